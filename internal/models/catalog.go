package models

// Skills is the catalog of skills users and teams can pick from.
var Skills = []string{
	"Frontend",
	"Backend",
	"Full Stack",
	"UI/UX Design",
	"Mobile Dev",
	"DevOps",
	"ML/AI",
	"Data Science",
	"Blockchain",
	"Cybersecurity",
	"Game Dev",
	"AR/VR",
	"Cloud",
	"Testing/QA",
	"Product Management",
	"Content Writing",
	"Marketing",
	"Video Editing",
	"3D Design",
	"Business/Strategy",
}

// Roles is the catalog of self-described roles for onboarding.
var Roles = []string{
	"Developer",
	"Designer",
	"Product Manager",
	"Data Scientist",
	"DevOps Engineer",
	"Marketing",
	"Other",
}

// ValidSkill reports whether s is in the skill catalog.
func ValidSkill(s string) bool {
	for _, skill := range Skills {
		if skill == s {
			return true
		}
	}
	return false
}
