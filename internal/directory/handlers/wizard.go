package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradesite/directory/internal/directory/models"
	"github.com/tradesite/directory/internal/directory/upload"
	"github.com/tradesite/directory/internal/directory/validation"
)

var profilePictureKey = regexp.MustCompile(`^profilePicture_(\d+)$`)

// Trades returns the full trade catalog as {id, name} pairs.
func (h *DirectoryHandler) Trades(c *gin.Context) {
	trades, err := h.service.ListTrades(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list trades", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load trades")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trades": toTradeResponses(trades)})
}

// Step1 validates the company details and stores an optional logo.
func (h *DirectoryHandler) Step1(c *gin.Context) {
	name := c.PostForm("name")
	abn := c.PostForm("abn")

	if errs := validation.Step1(name, abn); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	var logo string
	if file, err := c.FormFile("logo"); err == nil {
		logo, err = h.uploads.Save(file, "")
		if err != nil {
			h.logger.Error("Failed to store logo", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to store logo")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logo": logo})
}

type step2Request struct {
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// Step2 validates the contact details.
func (h *DirectoryHandler) Step2(c *gin.Context) {
	var req step2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c, validation.FieldErrors{"request": "Invalid request body"})
		return
	}

	if errs := validation.Step2(req.Mobile, req.Email); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Step3 validates the team and stores optional per-employee profile
// pictures, returned keyed by the employee's index in the submitted
// list.
func (h *DirectoryHandler) Step3(c *gin.Context) {
	employees, errs := parseEmployees(c.PostForm("employees"))
	if len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}
	if errs := validation.Step3(employees); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	pictures := map[string]string{}
	if form, err := c.MultipartForm(); err == nil {
		for key, files := range form.File {
			match := profilePictureKey.FindStringSubmatch(key)
			if match == nil || len(files) == 0 {
				continue
			}
			stored, err := h.uploads.Save(files[0], upload.ProfilesDir)
			if err != nil {
				h.logger.Error("Failed to store profile picture", zap.Error(err), zap.String("key", key))
				respondError(c, http.StatusInternalServerError, "Failed to store profile picture")
				return
			}
			pictures[match[1]] = stored
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profilePictures": pictures})
}

type step4Request struct {
	TradeIDs []uint `json:"tradeIds"`
}

// Step4 validates the trade selection against the catalog.
func (h *DirectoryHandler) Step4(c *gin.Context) {
	var req step4Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c, validation.FieldErrors{"request": "Invalid request body"})
		return
	}

	errs, err := h.service.ValidateTradeIDs(c.Request.Context(), req.TradeIDs)
	if err != nil {
		h.logger.Error("Failed to validate trades", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to validate trades")
		return
	}
	if len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Step5 revalidates the full resubmitted payload, stores the uploaded
// documents, and persists the subcontractor aggregate.
func (h *DirectoryHandler) Step5(c *gin.Context) {
	employees, errs := parseEmployees(c.PostForm("employees"))
	if len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	var tradeIDs []uint
	if raw := c.PostForm("tradeIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tradeIDs); err != nil {
			respondFieldErrors(c, validation.FieldErrors{"tradeIds": "Invalid trade selection"})
			return
		}
	}

	// Documents hit durable storage before the record referencing them;
	// files orphaned by a later validation failure are not cleaned up.
	var documents []models.Document
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["documents"] {
			stored, err := h.uploads.Save(file, upload.DocumentsDir)
			if err != nil {
				h.logger.Error("Failed to store document", zap.Error(err))
				respondError(c, http.StatusInternalServerError, "Failed to store document")
				return
			}
			documents = append(documents, models.Document{
				Filename:     stored,
				OriginalName: file.Filename,
			})
		}
	}

	submission := &models.Submission{
		Name:      c.PostForm("name"),
		ABN:       c.PostForm("abn"),
		Logo:      c.PostForm("logo"),
		Mobile:    c.PostForm("mobile"),
		Email:     c.PostForm("email"),
		Employees: employees,
		TradeIDs:  tradeIDs,
		Documents: documents,
	}

	created, err := h.service.CreateSubcontractor(c.Request.Context(), submission)
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondFieldErrors(c, fieldErrs)
			return
		}
		h.logger.Error("Failed to create subcontractor", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create subcontractor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      created.ID,
		"slug":    created.Slug,
		"message": "Subcontractor created successfully",
	})
}

// parseEmployees decodes the JSON-encoded employee list submitted as a
// multipart form field.
func parseEmployees(raw string) ([]models.EmployeeSubmission, validation.FieldErrors) {
	if raw == "" {
		return nil, nil
	}
	var employees []models.EmployeeSubmission
	if err := json.Unmarshal([]byte(raw), &employees); err != nil {
		return nil, validation.FieldErrors{"employees": "Invalid employee list"}
	}
	return employees, nil
}
