package extract

// This file holds the bilingual (English/French) keyword tables consumed by
// the extractors. Adding a locale variant is a data change here, not a code
// change in the matching functions.

// sectionEndHeaders is the global list of known section headers used to find
// where any located section ends.
var sectionEndHeaders = []string{
	"education", "experience", "skills", "techskills", "softskills", "projects", "certifications",
	"languages", "references", "awards", "publications", "interests",
	"diplômes", "formations", "expérience", "compétences", "compétencestechniques", "projets",
	"langues", "centres", "activités", "atouts", "activiteparascolaire",
}

// educationSynonyms are the header variants that open an education section.
var educationSynonyms = []string{
	"education", "academic background", "qualifications",
	"diplômes", "formations", "diplôme", "formation académique",
	"diplômes et formations",
}

// languageSynonyms are the header variants that open a languages section.
var languageSynonyms = []string{"languages", "language skills", "langues"}

// certificationSynonyms are the header variants that open a certifications section.
var certificationSynonyms = []string{"certifications", "certificates", "licenses"}

// skillDictionary is the master list of recognized technical skills.
// Scan order is dictionary order, so results are reported in this order
// regardless of where a skill appears in the document.
var skillDictionary = []string{
	"JavaScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Go", "Rust", "C",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"HTML", "CSS", "Sass", "TypeScript", "SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "GitHub", "GitLab",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn",
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum", "CI/CD", "Jenkins",
	"Linux", "Windows", "macOS", "Bash", "PowerShell", "Qt", "SQLite",
	"Figma", "Adobe XD", "Photoshop", "Illustrator", "phpMyAdmin", "MySQL Workbench",
	"Excel", "PowerPoint", "Word", "Tableau", "Power BI",
}

// degreeKeywords mark a line as the start of an education entry.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "diploma", "associate",
	"licence", "ingénieur", "baccalauréat", "diplôme",
	"engineering", "science", "degree", "sciences",
}

// countryPattern maps a country to its surface forms: name variants plus
// major-city keywords. Table order decides ties, not position in the text.
type countryPattern struct {
	Name     string
	Keywords []string
}

var countryTable = []countryPattern{
	{"Morocco", []string{"morocco", "maroc", "rabat", "casablanca", "meknès", "meknes", "fès", "fes", "tanger", "marrakech", "agadir"}},
	{"France", []string{"france", "paris", "lyon", "marseille", "toulouse", "nice", "nantes", "strasbourg", "bordeaux"}},
	{"Canada", []string{"canada", "toronto", "montreal", "vancouver", "ottawa", "calgary", "edmonton", "québec"}},
	{"United States", []string{"usa", "united states", "new york", "california", "texas", "florida", "chicago", "boston", "seattle"}},
	{"United Kingdom", []string{"uk", "united kingdom", "london", "manchester", "birmingham", "edinburgh", "glasgow"}},
	{"Germany", []string{"germany", "allemagne", "berlin", "munich", "hamburg", "frankfurt", "cologne"}},
	{"Spain", []string{"spain", "espagne", "madrid", "barcelona", "valencia", "seville"}},
	{"Italy", []string{"italy", "italie", "rome", "milan", "naples", "turin", "florence"}},
}

// languagePattern maps a canonical English language name to its surface
// form variants (English and French).
type languagePattern struct {
	Canonical string
	Variants  []string
}

var languageTable = []languagePattern{
	{"English", []string{"English", "Anglais"}},
	{"Spanish", []string{"Spanish", "Espagnol"}},
	{"French", []string{"French", "Français"}},
	{"German", []string{"German", "Allemand"}},
	{"Italian", []string{"Italian", "Italien"}},
	{"Portuguese", []string{"Portuguese", "Portugais"}},
	{"Chinese", []string{"Chinese", "Chinois"}},
	{"Japanese", []string{"Japanese", "Japonais"}},
	{"Korean", []string{"Korean", "Coréen"}},
	{"Arabic", []string{"Arabic", "Arabe"}},
	{"Russian", []string{"Russian", "Russe"}},
	{"Hindi", []string{"Hindi", "Hindi"}},
}
