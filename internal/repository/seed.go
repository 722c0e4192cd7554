package repository

import "github.com/edupanel/staff-api/internal/models"

// seedTeachers returns the deterministic roster written on first-ever access.
func seedTeachers() []models.Teacher {
	return []models.Teacher{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Email:           "sarah.johnson@school.edu",
			Phone:           "+1 (555) 123-4567",
			Subject:         "Mathematics",
			Department:      "Science",
			Experience:      8,
			Status:          models.StatusActive,
			JoinDate:        "2019-08-15",
			Location:        "New York, NY",
			Rating:          4.8,
			StudentsCount:   120,
			HourlyRate:      50,
			Bio:             "Passionate mathematics educator with expertise in advanced calculus and statistics.",
			Qualifications:  []string{"PhD in Mathematics", "M.Ed in Curriculum Development"},
			Specializations: []string{"Calculus", "Statistics", "Algebra"},
		},
		{
			ID:              "2",
			Name:            "Michael Chen",
			Email:           "michael.chen@school.edu",
			Phone:           "+1 (555) 234-5678",
			Subject:         "Physics",
			Department:      "Science",
			Experience:      5,
			Status:          models.StatusActive,
			JoinDate:        "2021-01-10",
			Location:        "San Francisco, CA",
			Rating:          4.5,
			StudentsCount:   85,
			HourlyRate:      45,
			Bio:             "Physics teacher focused on hands-on laboratory learning.",
			Qualifications:  []string{"MSc in Physics"},
			Specializations: []string{"Mechanics", "Electromagnetism"},
		},
		{
			ID:              "3",
			Name:            "Emily Rodriguez",
			Email:           "emily.rodriguez@school.edu",
			Phone:           "+1 (555) 345-6789",
			Subject:         "English Literature",
			Department:      "Humanities",
			Experience:      11,
			Status:          models.StatusOnLeave,
			JoinDate:        "2015-09-01",
			Location:        "Chicago, IL",
			Rating:          4.9,
			StudentsCount:   140,
			HourlyRate:      55,
			Bio:             "Award-winning literature teacher and published essayist.",
			Qualifications:  []string{"MA in English Literature", "B.Ed"},
			Specializations: []string{"Victorian Literature", "Creative Writing"},
		},
	}
}
