package db

// tradeCatalog is the fixed vocabulary of construction trades seeded
// into an empty database on startup.
var tradeCatalog = []string{
	"Building Envelope",
	"Roofing",
	"Waterproofing",
	"Cladding",
	"Glazing",
	"Insulation",
	"MEP Systems",
	"Plumbing",
	"HVAC",
	"Electrical",
	"Fire sprinklers",
	"Drywall",
	"Painting",
	"Flooring",
	"Ceilings",
	"Millwork",
	"Fire alarms",
	"Security systems",
	"Low-voltage",
	"Elevators",
	"Excavation",
	"Paving",
	"Landscaping",
	"Site utilities",
	"Rebar installers",
	"Post-tension",
	"Precast concrete",
	"Tilt-up panels",
	"Shotcrete",
	"Epoxy injection",
	"Structural welding",
	"Metal studs",
	"Heavy timber",
	"Glulam beams",
	"General contractors",
	"Concrete",
	"Steel erectors",
	"Masonry",
	"Carpenters",
	"Stucco",
	"EIFS systems",
	"Stone veneer",
	"Brick pointing",
	"Expansion joints",
	"Sealants",
	"Louvers",
	"Canopies",
	"Metal fascia",
	"Soffit installers",
	"Sheet metal",
	"Roof hatches",
	"Skylights",
	"Green roofs",
	"Solar panels",
	"Lightning protection",
	"Roof walkways",
	"Gutter systems",
	"Flashing",
	"Overhead doors",
	"Roll-up doors",
	"Loading docks",
	"Door hardware",
	"Automatic doors",
	"Revolving doors",
	"Storefront systems",
	"Blast doors",
	"Vault doors",
	"Demountable partitions",
	"Operable walls",
	"Glass partitions",
	"Metal partitions",
	"Toilet partitions",
	"Shower enclosures",
	"Terrazzo",
	"Polished concrete",
	"Epoxy coatings",
	"Tile setters",
	"Hardwood flooring",
	"Rubber flooring",
	"Raised flooring",
	"Athletic flooring",
	"Anti-static flooring",
	"Wallcovering",
	"Acoustic panels",
	"Fabric walls",
	"Wood paneling",
	"Metal panels",
	"Whiteboard installers",
	"Corner guards",
	"Wall protection",
	"Metal ceilings",
	"Wood ceilings",
	"Specialty ceilings",
	"Ceiling clouds",
	"Stretched fabric",
	"Ductwork",
	"Piping insulators",
	"Boilers",
	"Chillers",
	"Cooling towers",
	"Air handlers",
	"Kitchen exhaust",
	"Laboratory exhaust",
	"Clean rooms",
	"Refrigeration",
	"Medical gas",
	"Process piping",
	"Grease traps",
	"Backflow preventers",
	"Water treatment",
	"Sewage ejectors",
	"Generators",
	"Transformers",
	"Switchgear",
	"Motor controls",
	"Lighting controls",
	"Emergency lighting",
	"Exit signs",
	"Audio/visual",
	"Sound systems",
	"Intercom systems",
	"Nurse call",
	"CCTV",
	"Card access",
	"Fiber optics",
	"Data centers",
	"Building automation",
	"Clean room construction",
	"Walk-in coolers",
	"Walk-in freezers",
	"Modular buildings",
	"Prefab restrooms",
}
