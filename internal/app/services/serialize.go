package services

import (
	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/app/models/dto"
)

// Entities nested inside another entity's payload are rendered as summaries,
// never as full forms. Collections are always materialized as empty slices so
// they serialize as [] rather than null.

func courseSummary(course *models.Course) dto.CourseSummary {
	return dto.CourseSummary{
		ID:   course.ID,
		Code: course.Code,
		Name: course.Name,
	}
}

func userSummaries(users []models.User) []dto.UserSummary {
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			NetID: user.NetID,
		})
	}
	return summaries
}

func courseSummaries(courses []models.Course) []dto.CourseSummary {
	summaries := make([]dto.CourseSummary, 0, len(courses))
	for i := range courses {
		summaries = append(summaries, courseSummary(&courses[i]))
	}
	return summaries
}

func assignmentResponse(assignment *models.Assignment, course *models.Course) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:      assignment.ID,
		Title:   assignment.Title,
		DueDate: assignment.DueDate,
		Course:  courseSummary(course),
	}
}
