package course

import "time"

// SeedInstructors returns the starter instructor roster loaded at boot.
func SeedInstructors() []Instructor {
	return []Instructor{
		{ID: "instr-001", Name: "John Doe", Bio: "Python expert"},
		{ID: "instr-002", Name: "Jane Smith", Bio: "FastAPI specialist"},
		{ID: "instr-003", Name: "Dr. Emily Chen", Bio: "Data Science researcher"},
	}
}

// SeedCourses returns the starter catalog loaded at boot.
func SeedCourses(now time.Time) []Course {
	courses := []Course{
		{
			ID:           "course-001",
			Title:        "Python Fundamentals",
			Description:  "Learn Python basics from scratch",
			InstructorID: "instr-001",
			CreatedAt:    now,
			UpdatedAt:    now,
			Modules: []Module{
				{
					ID:              "mod-001",
					Title:           "Introduction to Python",
					Description:     "Get started with Python",
					Order:           1,
					DurationMinutes: 120,
					Lessons: []Lesson{
						{
							ID:              "les-001",
							Title:           "Variables and Data Types",
							Description:     "Learn about variables",
							Order:           1,
							DurationMinutes: 45,
							Topics: []Topic{
								{
									ID:              "top-001",
									Title:           "String Variables",
									Description:     "Understanding strings",
									Order:           1,
									ContentURL:      "https://example.com/strings",
									DurationMinutes: 15,
								},
								{
									ID:              "top-002",
									Title:           "Numeric Variables",
									Description:     "Understanding numbers",
									Order:           2,
									ContentURL:      "https://example.com/numbers",
									DurationMinutes: 15,
								},
							},
						},
					},
				},
			},
		},
		{
			ID:           "course-002",
			Title:        "Web Development with FastAPI",
			Description:  "Build modern APIs with FastAPI",
			InstructorID: "instr-002",
			CreatedAt:    now,
			UpdatedAt:    now,
			Modules: []Module{
				{
					ID:              "mod-002",
					Title:           "FastAPI Basics",
					Description:     "FastAPI fundamentals",
					Order:           1,
					DurationMinutes: 150,
					Lessons: []Lesson{
						{
							ID:              "les-002",
							Title:           "Creating Your First API",
							Description:     "Build a simple API",
							Order:           1,
							DurationMinutes: 60,
							Topics: []Topic{
								{
									ID:              "top-003",
									Title:           "HTTP Methods",
									Description:     "Understanding GET, POST, PUT, DELETE",
									Order:           1,
									ContentURL:      "https://example.com/http-methods",
									DurationMinutes: 20,
								},
							},
						},
					},
				},
			},
		},
		{
			ID:           "course-003",
			Title:        "Data Science Basics",
			Description:  "Introduction to data science and analytics",
			InstructorID: "instr-003",
			CreatedAt:    now,
			UpdatedAt:    now,
			Modules: []Module{
				{
					ID:              "mod-003",
					Title:           "Data Analysis",
					Description:     "Learn data analysis fundamentals",
					Order:           1,
					DurationMinutes: 180,
					Lessons: []Lesson{
						{
							ID:              "les-003",
							Title:           "Working with Pandas",
							Description:     "Data manipulation with Pandas",
							Order:           1,
							DurationMinutes: 90,
							Topics: []Topic{
								{
									ID:              "top-004",
									Title:           "DataFrames",
									Description:     "Understanding DataFrames",
									Order:           1,
									ContentURL:      "https://example.com/dataframes",
									DurationMinutes: 30,
								},
								{
									ID:              "top-005",
									Title:           "Data Cleaning",
									Description:     "Cleaning and preparing data",
									Order:           2,
									ContentURL:      "https://example.com/cleaning",
									DurationMinutes: 30,
								},
							},
						},
					},
				},
			},
		},
	}

	for i := range courses {
		courses[i].Recount()
	}

	return courses
}
