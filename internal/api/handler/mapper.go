package handler

import (
	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

func toJobResponse(l domain.JobListing, withCount bool) jobResponse {
	resp := jobResponse{
		JobID:       l.ID,
		EmployerID:  l.EmployerID,
		Title:       l.Title,
		Description: l.Description,
		JobType:     l.JobType,
		Location:    l.Location,
		PayRange:    l.PayRange,
		DatePosted:  l.DatePosted,
		IsActive:    l.IsActive,
		CompanyName: l.CompanyName,
	}
	if withCount {
		n := l.ApplicationCount
		resp.ApplicationCount = &n
	}
	return resp
}

func toJobResponses(listings []domain.JobListing, withCount bool) []jobResponse {
	out := make([]jobResponse, len(listings))
	for i, l := range listings {
		out[i] = toJobResponse(l, withCount)
	}
	return out
}

func toJobCardResponses(cards []ports.JobCard) []jobResponse {
	out := make([]jobResponse, len(cards))
	for i, card := range cards {
		out[i] = toJobResponse(card.JobListing, false)
		out[i].HasApplied = card.HasApplied
	}
	return out
}

// toApplicationResponses renders applications. Applicant contact details are
// only included for the employer-facing view.
func toApplicationResponses(details []domain.ApplicationDetail, withApplicant bool) []applicationResponse {
	out := make([]applicationResponse, len(details))
	for i, d := range details {
		out[i] = toApplicationResponse(d, withApplicant)
	}
	return out
}

func toApplicationResponse(d domain.ApplicationDetail, withApplicant bool) applicationResponse {
	resp := applicationResponse{
		ApplicationID: d.ID,
		JobID:         d.JobID,
		UserID:        d.UserID,
		JobTitle:      d.JobTitle,
		CompanyName:   d.CompanyName,
		CoverLetter:   d.CoverLetter,
		Status:        d.Status,
		DateApplied:   d.DateApplied,
		HasResume:     d.ResumeKey != "",
	}
	if withApplicant {
		resp.ApplicantName = d.ApplicantName()
		resp.ApplicantEmail = d.ApplicantEmail
	}
	return resp
}

func toResourceResponses(views []ports.ResourceView) []resourceResponse {
	out := make([]resourceResponse, len(views))
	for i, v := range views {
		out[i] = resourceResponse{FinancialResource: v.FinancialResource, LikedByMe: v.LikedByMe}
	}
	return out
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	return dashboardResponse{
		UsersByRole:          d.UsersByRole,
		TotalJobs:            d.TotalJobs,
		ActiveJobs:           d.ActiveJobs,
		ApplicationsByStatus: d.ApplicationsByStatus,
		ResourcesByType:      d.ResourcesByType,
		TotalLikes:           d.TotalLikes,
	}
}
