package skill

// DefaultCategories is the built-in canonical skill vocabulary. Callers that
// need a different table inject their own ordered category list instead of
// mutating this one.
func DefaultCategories() []Category {
	return []Category{
		{Name: "python", Keywords: []string{"python", "pandas", "numpy", "django", "flask"}},
		{Name: "go", Keywords: []string{"golang", "go developer", "go engineer"}},
		{Name: "java", Keywords: []string{"java ", "java,", "spring boot", "jvm"}},
		{Name: "javascript", Keywords: []string{"javascript", "typescript", "node", "js developer"}},
		{Name: "react", Keywords: []string{"react", "next.js", "nextjs"}},
		{Name: "sql", Keywords: []string{"sql", "postgres", "mysql", "database query"}},
		{Name: "nosql", Keywords: []string{"mongodb", "cassandra", "dynamodb", "redis"}},
		{Name: "docker", Keywords: []string{"docker", "container"}},
		{Name: "kubernetes", Keywords: []string{"kubernetes", "k8s", "helm"}},
		{Name: "aws", Keywords: []string{"aws", "amazon web services", "ec2", "s3 bucket", "lambda"}},
		{Name: "gcp", Keywords: []string{"gcp", "google cloud", "bigquery"}},
		{Name: "linux", Keywords: []string{"linux", "unix", "bash", "shell script"}},
		{Name: "git", Keywords: []string{"git", "version control"}},
		{Name: "ci/cd", Keywords: []string{"ci/cd", "cicd", "jenkins", "github actions", "gitlab ci"}},
		{Name: "machine learning", Keywords: []string{"machine learning", "scikit", "tensorflow", "pytorch", "deep learning"}},
		{Name: "data analysis", Keywords: []string{"data analysis", "data analyst", "analytics", "tableau", "power bi"}},
		{Name: "excel", Keywords: []string{"excel", "spreadsheet", "vlookup"}},
		{Name: "project management", Keywords: []string{"project management", "scrum", "agile", "kanban", "jira"}},
		{Name: "communication", Keywords: []string{"communication", "presentation", "public speaking"}},
		{Name: "leadership", Keywords: []string{"leadership", "team lead", "mentoring", "people management"}},
		{Name: "design", Keywords: []string{"ui design", "ux", "figma", "graphic design", "visual design"}},
		{Name: "testing", Keywords: []string{"testing", "qa ", "quality assurance", "selenium", "unit test"}},
		{Name: "security", Keywords: []string{"security", "penetration test", "owasp", "cryptograph"}},
		{Name: "networking", Keywords: []string{"networking", "tcp/ip", "dns", "load balanc"}},
		{Name: "accounting", Keywords: []string{"accounting", "bookkeeping", "financial report"}},
		{Name: "marketing", Keywords: []string{"marketing", "seo", "social media", "campaign"}},
		{Name: "sales", Keywords: []string{"sales", "business development", "crm"}},
		{Name: "hr", Keywords: []string{"human resource", "recruitment", "talent acquisition", "payroll"}},
	}
}
