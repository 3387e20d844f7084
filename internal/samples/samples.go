package samples

import "github.com/spigell/resume-ranker/internal/ranking"

// Job describes a position used by the demos.
type Job struct {
	Title        string
	Requirements ranking.Requirements
}

// DataScientist is the reference position every sample resume is ranked against.
func DataScientist() Job {
	return Job{
		Title: "Senior Data Scientist",
		Requirements: ranking.Requirements{
			Skills:   []string{"Python", "Machine Learning", "SQL", "Data Analysis", "Statistics"},
			Keywords: []string{"data science", "analytics", "machine learning", "research", "modeling"},
		},
	}
}

// Resume is a detailed, high scoring resume for DataScientist.
const Resume = `
    Sarah Johnson
    Senior Data Scientist with 6 years of experience
    
    EDUCATION:
    - PhD in Statistics from Stanford University (2018)
    - Master of Science in Computer Science from MIT (2015)
    - Bachelor of Mathematics from UC Berkeley (2013)
    
    TECHNICAL SKILLS:
    - Advanced Python programming and data analysis
    - Machine Learning: supervised and unsupervised learning
    - SQL database management and optimization
    - Statistical modeling and hypothesis testing
    - Deep learning frameworks: TensorFlow, PyTorch
    - Data visualization: matplotlib, seaborn, plotly
    - Big data technologies: Spark, Hadoop
    
    PROFESSIONAL EXPERIENCE:
    Data Scientist at Google (2020-Present)
    - Led machine learning initiatives that improved ad targeting by 25%
    - Developed predictive models for user behavior analysis
    - Collaborated with cross-functional teams on data-driven product decisions
    - Mentored junior data scientists and conducted technical interviews
    
    Senior Data Analyst at Facebook (2018-2020)
    - Implemented statistical models for user engagement optimization
    - Designed and executed A/B tests for product features
    - Created automated reporting dashboards using Python and SQL
    - Published research findings in internal technical conferences
    
    ACHIEVEMENTS & CERTIFICATIONS:
    - Certified Professional in Data Science (Google Cloud)
    - AWS Certified Machine Learning Specialist
    - Published 8 peer-reviewed papers in machine learning journals
    - Winner of "Innovation Excellence Award" at Google (2022)
    - Speaker at 5 international data science conferences
    - Led successful implementation of recommendation engine serving 100M+ users
    - Achieved 40% improvement in model accuracy through novel ensemble methods
    
    PROJECTS:
    - Developed fraud detection system reducing false positives by 60%
    - Created customer lifetime value prediction model with 95% accuracy
    - Built real-time analytics pipeline processing 1TB+ daily data
    `

// Candidates returns four resumes of different strength for DataScientist.
func Candidates() []ranking.Resume {
	return []ranking.Resume{
		{
			ID: "sarah_johnson.txt",
			Text: `
        Sarah Johnson - Senior Data Scientist with 6 years of experience
        
        EDUCATION: PhD in Statistics from Stanford University, Master of Science in Computer Science from MIT
        
        SKILLS: Advanced Python programming, Machine Learning algorithms, SQL database management, 
        Statistical modeling, Deep learning frameworks (TensorFlow, PyTorch)
        
        EXPERIENCE: Data Scientist at Google (2020-Present) - Led machine learning initiatives, 
        improved ad targeting by 25%. Senior Data Analyst at Facebook (2018-2020) - Implemented 
        statistical models, designed A/B tests.
        
        ACHIEVEMENTS: Certified Professional in Data Science (Google Cloud), AWS Certified ML Specialist,
        Published 8 peer-reviewed papers, Winner of Innovation Excellence Award at Google (2022)
        `,
		},
		{
			ID: "mike_chen.txt",
			Text: `
        Mike Chen - Data Analyst with 3 years experience
        
        EDUCATION: Bachelor of Science in Mathematics from UC Berkeley
        
        SKILLS: Python programming, SQL queries, Data analysis, Basic machine learning, Excel
        
        EXPERIENCE: Data Analyst at startup (2021-Present) - Created reports and dashboards.
        Junior Analyst at consulting firm (2020-2021) - Performed data cleaning and analysis.
        
        ACHIEVEMENTS: Completed online machine learning course, Created automated reporting system
        `,
		},
		{
			ID: "dr_patel.txt",
			Text: `
        Dr. Raj Patel - Research Scientist with 10 years experience
        
        EDUCATION: PhD in Computer Science from MIT, Master in Applied Mathematics from Caltech
        
        SKILLS: Python, R, Machine Learning, Deep Learning, Statistical Analysis, Research, 
        Data Science, Neural Networks, Natural Language Processing
        
        EXPERIENCE: Senior Research Scientist at Microsoft Research (2018-Present) - Led AI research team,
        published 20+ papers. Research Scientist at IBM Watson (2015-2018) - Developed ML algorithms.
        Postdoc at Stanford AI Lab (2013-2015) - Advanced machine learning research.
        
        ACHIEVEMENTS: 25 published papers in top AI conferences, 3 patents in machine learning,
        IEEE Fellow, Winner of Best Paper Award at NIPS, Keynote speaker at 10+ conferences
        `,
		},
		{
			ID: "lisa_wang.txt",
			Text: `
        Lisa Wang - Junior Data Scientist
        
        EDUCATION: Bachelor in Computer Science from State University
        
        SKILLS: Python basics, SQL, Some machine learning knowledge
        
        EXPERIENCE: Intern at tech company (6 months) - Helped with data analysis projects
        
        ACHIEVEMENTS: Graduated with honors, Completed data science bootcamp
        `,
		},
	}
}
