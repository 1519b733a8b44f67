package handler

import (
	"net/http"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// AddJobRequest is the body of POST /jobs
type AddJobRequest struct {
	Company  string           `json:"company" validate:"required,max=200"`
	Position string           `json:"position" validate:"required,max=200"`
	Status   domain.JobStatus `json:"status" validate:"omitempty,jobstatus"`
	Notes    string           `json:"notes" validate:"max=2000"`
	Link     string           `json:"link" validate:"omitempty,url,max=2000"`
}

// UpdateJobStatusRequest is the body of PATCH /jobs/{id}/status
type UpdateJobStatusRequest struct {
	Status domain.JobStatus `json:"status" validate:"required,jobstatus"`
}

// JobsResponse wraps a job list
type JobsResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

// BoardResponse wraps the status columns
type BoardResponse struct {
	Columns []domain.JobColumn `json:"columns"`
}

// HandleAddJob records a new application
// @Summary Add job application
// @Description Awards application XP; status defaults to Applied
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body AddJobRequest true "Application"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /jobs [post]
func (h *TrackerHandler) HandleAddJob(w http.ResponseWriter, r *http.Request) {
	var req AddJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add job"); err != nil {
		return
	}

	out := h.service.AddJob(r.Context(), domain.NewJob{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
		Notes:    req.Notes,
		Link:     req.Link,
	})
	h.respondMutation(w, r, http.StatusCreated, out, nil)
}

// HandleSearchJobs filters jobs by company or position, ignoring case
// @Summary Search jobs
// @Tags jobs
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} JobsResponse
// @Router /jobs [get]
func (h *TrackerHandler) HandleSearchJobs(w http.ResponseWriter, r *http.Request) {
	query := GetOptionalQueryParam(r, "q", "")
	respondJSON(w, http.StatusOK, JobsResponse{Jobs: h.service.SearchJobs(r.Context(), query)})
}

// HandleJobBoard groups jobs by status column
func (h *TrackerHandler) HandleJobBoard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, BoardResponse{Columns: h.service.JobBoard(r.Context())})
}

// HandleUpdateJobStatus moves an application through the pipeline
// @Summary Update job status
// @Description Interview and Offer award XP every time they are set
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body UpdateJobStatusRequest true "New status"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id}/status [patch]
func (h *TrackerHandler) HandleUpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateJobStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update job status"); err != nil {
		return
	}

	out := h.service.UpdateJobStatus(r.Context(), pathID(r), req.Status)
	h.respondMutation(w, r, http.StatusOK, out, domain.ErrJobNotFound)
}

// HandleDeleteJob removes an application
// @Summary Delete job
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 200 {object} MutationResponse
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [delete]
func (h *TrackerHandler) HandleDeleteJob(w http.ResponseWriter, r *http.Request) {
	out := h.service.DeleteJob(r.Context(), pathID(r))
	h.respondMutation(w, r, http.StatusOK, out, domain.ErrJobNotFound)
}
