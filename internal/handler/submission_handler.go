package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nexivatech/nexivatech-website-backend/internal/domain"
	"github.com/nexivatech/nexivatech-website-backend/internal/service"
	"github.com/nexivatech/nexivatech-website-backend/internal/storage"
)

// Response is the envelope every endpoint answers with. Consumers branch on
// the success flag, so the shape and the message strings are contract.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

type SubmissionHandler struct {
	submissions service.SubmissionService
	staging     *storage.Staging
}

func NewSubmissionHandler(submissions service.SubmissionService, staging *storage.Staging) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		staging:     staging,
	}
}

// Contact handles POST /api/contact.
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Please fill in all required fields"})
		return
	}

	if err := h.submissions.SubmitContact(c.Request.Context(), &sub); err != nil {
		h.writeContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Contact form submitted successfully!"})
}

// maxCareerRequestSize caps the whole multipart body: the résumé limit plus
// headroom for the text fields and multipart framing.
const maxCareerRequestSize = storage.MaxResumeSize + 1<<20

// Career handles POST /api/career. An upload that passes the résumé policy is
// staged and removed again when the request finishes, whatever the outcome; an
// upload that violates it never reaches the staging directory.
func (h *SubmissionHandler) Career(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCareerRequestSize)

	var sub domain.CareerSubmission
	if err := c.ShouldBind(&sub); err != nil {
		if isBodyTooLarge(err) {
			c.JSON(http.StatusBadRequest, Response{Success: false, Message: attachmentMessage(domain.AttachmentTooLarge)})
			return
		}
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Please fill in all required fields"})
		return
	}

	var resume *storage.StagedFile
	if fh, err := c.FormFile("resume"); err == nil {
		if storage.AllowedResumeExt(fh.Filename) && fh.Size <= storage.MaxResumeSize {
			staged, saveErr := h.staging.Save(fh)
			if saveErr != nil {
				log.Error().Err(saveErr).Msg("failed to stage resume upload")
				c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "Failed to submit application. Please try again."})
				return
			}
			resume = staged
			defer resume.Remove()
		} else {
			// The pipeline only needs the name and size to report which
			// constraint the upload broke, and it reports them after the
			// field checks, so no file is written just to be rejected.
			resume = &storage.StagedFile{OriginalName: fh.Filename, Size: fh.Size}
		}
	}

	if err := h.submissions.SubmitCareer(c.Request.Context(), &sub, resume); err != nil {
		h.writeCareerError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Application submitted successfully!"})
}

func (h *SubmissionHandler) writeContactError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Please fill in all required fields"})
		return
	}
	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "Failed to send message. Please try again."})
}

func (h *SubmissionHandler) writeCareerError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Please fill in all required fields"})
		return
	}

	var aErr *domain.AttachmentError
	if errors.As(err, &aErr) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: attachmentMessage(aErr.Reason)})
		return
	}

	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "Failed to submit application. Please try again."})
}

// isBodyTooLarge recognizes the abort MaxBytesReader injects into body
// parsing. Gin wraps the error on the multipart path, so the sentinel text is
// matched as well as the type.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func attachmentMessage(reason domain.AttachmentReason) string {
	switch reason {
	case domain.AttachmentTooLarge:
		return "File too large. Please upload a file smaller than 5MB."
	case domain.AttachmentBadType:
		return "Invalid file type. Please upload a PDF, DOC, or DOCX file."
	default:
		return "Please upload your resume"
	}
}
