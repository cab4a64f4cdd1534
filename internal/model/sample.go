package model

import "time"

// SampleResume returns the demonstration record seeded into an empty
// collection so a fresh install has something to open.
func SampleResume() Resume {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return Resume{
		ID:        NewResumeID(),
		Name:      "Sample Resume",
		CreatedAt: now,
		UpdatedAt: now,
		PersonalInfo: PersonalInfo{
			Name:      "John Smith",
			Email:     "john.smith@email.com",
			LinkedIn:  LinkRef{Text: LabelLinkedIn, URL: "linkedin.com/in/johnsmith"},
			Portfolio: LinkRef{Text: LabelPortfolio, URL: "johnsmith.dev"},
		},
		Experience: []Experience{
			{
				ID:       NewEntryID("exp"),
				Title:    "Senior Software Engineer",
				Company:  "Tech Solutions Inc.",
				Duration: "Jan 2022 - Present",
				Bullets: []string{
					"Led development of microservices architecture serving 1M+ daily users",
					"Reduced application load time by 40% through optimization and caching strategies",
					"Mentored 3 junior developers and conducted technical interviews",
				},
			},
			{
				ID:       NewEntryID("exp"),
				Title:    "Software Engineer",
				Company:  "Digital Innovations LLC",
				Duration: "Jun 2020 - Dec 2021",
				Bullets: []string{
					"Developed RESTful APIs for an e-commerce platform",
					"Built responsive components used by 500K+ customers",
					"Wrote comprehensive unit tests achieving 95% code coverage",
				},
			},
		},
		Education: []Education{
			{
				ID:          NewEntryID("edu"),
				Institution: "University of Technology",
				Degree:      "Bachelor of Science in Computer Science",
				Duration:    "Sep 2016 - May 2020",
				GPA:         "3.8",
			},
		},
		Leadership: []Leadership{
			{
				ID:           NewEntryID("lead"),
				Title:        "Technical Team Lead",
				Organization: "Open Source Project",
				Duration:     "Mar 2021 - Present",
				Bullets: []string{
					"Led team of 8 volunteer developers on a popular open source library",
					"Organized weekly code reviews and technical architecture discussions",
				},
			},
		},
		Awards: []Award{
			{
				ID:           NewEntryID("award"),
				Title:        "Employee of the Year",
				Organization: "Tech Solutions Inc.",
				Date:         "2023",
				Bullets: []string{
					"Recognized for outstanding contribution to product development",
				},
			},
		},
		Skills: Skills{
			Technical: []string{"Go", "TypeScript", "PostgreSQL", "Docker", "AWS"},
			Soft:      []string{"Leadership", "Problem Solving", "Communication"},
		},
		SectionHeadings: DefaultSectionHeadings(),
	}
}
