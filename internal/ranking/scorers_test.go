package ranking

import (
	"strings"
	"testing"
)

func TestSkillsMatch(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	tests := []struct {
		name   string
		text   string
		skills []string
		expect float64
	}{
		{
			name:   "half of the skills matched",
			text:   "I have experience with Python, JavaScript, and SQL databases.",
			skills: []string{"Python", "SQL", "Machine Learning", "Docker"},
			expect: 50,
		},
		{
			name:   "no skills required",
			text:   "Python, SQL, Docker",
			skills: nil,
			expect: 0,
		},
		{
			name:   "empty skills list",
			text:   "Python, SQL, Docker",
			skills: []string{},
			expect: 0,
		},
		{
			name:   "matches inside other words and trims skills",
			text:   "Expert in JavaScript",
			skills: []string{"  java  ", "SCRIPT"},
			expect: 100,
		},
		{
			name:   "repeated skills count every time",
			text:   "go developer",
			skills: []string{"Go", "go", "rust", "java"},
			expect: 50,
		},
		{
			name:   "empty resume",
			text:   "",
			skills: []string{"go"},
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.SkillsMatch(tt.text, tt.skills); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestExperienceRelevance(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	tests := []struct {
		name     string
		text     string
		keywords []string
		expect   float64
	}{
		{
			name:     "years and all keywords",
			text:     "Software engineer with 5 years of experience in web development and programming.",
			keywords: []string{"programming", "software", "development"},
			expect:   90,
		},
		{
			name:     "no keywords is neutral",
			text:     "20 years of experience",
			keywords: nil,
			expect:   50,
		},
		{
			name:     "largest figure across patterns wins and is capped",
			text:     "10+ years in go, 3 years experience with k8s",
			keywords: []string{"go"},
			expect:   100,
		},
		{
			name:     "years only",
			text:     "2 years of experience",
			keywords: []string{"rust"},
			expect:   16,
		},
		{
			name:     "huge figure saturates",
			text:     "99999999999999999999999 years of experience",
			keywords: []string{"rust"},
			expect:   50,
		},
		{
			name:     "arabic-indic digits",
			text:     "٥ years of experience",
			keywords: []string{"rust"},
			expect:   40,
		},
		{
			name:     "empty resume",
			text:     "",
			keywords: []string{"go"},
			expect:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.ExperienceRelevance(tt.text, tt.keywords); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestYearsOfExperience(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"":                                     0,
		"5 YEARS OF EXPERIENCE":                5,
		"1 year experience":                    1,
		"7+ years":                             7,
		"3 years of experience, 12+ years":     12,
		"ten years of experience":              0,
		"4\u00a0years\u00a0of\u00a0experience": 4,
		"6\tyears\nexperience":                 6,
		"٥ years of experience":                5,
		"١٢+ years":                            12,
		"८ years experience":                   8,
	}

	for text, expect := range tests {
		if got := YearsOfExperience(text); got != expect {
			t.Fatalf("%q: expected %d, got %d", text, expect, got)
		}
	}
}

func TestEducationBackground(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	tests := []struct {
		text   string
		expect float64
	}{
		// "diploma" also contains "ma".
		{text: "High school diploma", expect: 95},
		{text: "Bachelor of Science degree", expect: 75},
		{text: "Master of Engineering", expect: 90},
		{text: "PhD in Computer Science", expect: 100},
		{text: "", expect: 0},
		{text: "xyz", expect: 0},
	}

	for _, tt := range tests {
		if got := e.EducationBackground(tt.text); got != tt.expect {
			t.Fatalf("%q: expected %v, got %v", tt.text, tt.expect, got)
		}
	}
}

func TestAchievementsCertifications(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	text := `
    Certified AWS Solutions Architect with multiple achievements.
    Led successful project implementation that improved efficiency.
    Published research papers and received excellence award.
    `

	if got := CertificationMatches(text); got != 2 {
		t.Fatalf("expected 2 certification matches, got %d", got)
	}

	if got := e.AchievementsCertifications(text); got != 65 {
		t.Fatalf("expected 65, got %v", got)
	}

	if got := e.AchievementsCertifications(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %v", got)
	}

	repeated := strings.Repeat("certified expert. ", 30)
	if got := e.AchievementsCertifications(repeated); got != 100 {
		t.Fatalf("expected capped score, got %v", got)
	}
}

func TestCommunicationQuality(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	long := "This is a well-structured professional resume with appropriate length and good vocabulary. " +
		"The candidate demonstrates excellent communication skills through clear and concise presentation " +
		"of their experience and qualifications."

	tests := []struct {
		name   string
		text   string
		expect float64
	}{
		{name: "empty", text: "", expect: 0},
		{name: "whitespace only", text: " \n\t ", expect: 0},
		{name: "dots only", text: "...", expect: 10},
		{name: "very short", text: "Very short", expect: 10},
		{name: "two sentences", text: long, expect: 42},
		{
			name:   "good length and sentence size",
			text:   strings.Repeat("I managed and developed a leadership program with broad experience in teams. ", 15),
			expect: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.CommunicationQuality(tt.text); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := map[float64]float64{
		79.15:          79.15,
		12.5:           12.5,
		1.005:          1, // 1.005 is stored as 1.00499...
		0.125:          0.12,
		0.375:          0.38,
		33.33333333333: 33.33,
	}

	for in, expect := range tests {
		if got := round2(in); got != expect {
			t.Fatalf("round2(%v): expected %v, got %v", in, expect, got)
		}
	}
}
