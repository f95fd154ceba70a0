package filter

// Keywords are the roles the channel publishes. The scraper searches for the
// same list.
var Keywords = []string{
	"Data Scientist", "Machine Learning Engineer", "ML Engineer",
	"Data Analyst", "Data Engineer", "Big Data Engineer", "Data Architect",
	"Business Intelligence", "BI Analyst", "BI Developer", "Statistician",
	"Quantitative Analyst", "NLP Engineer", "Computer Vision Engineer",
	"Deep Learning Engineer", "AI Engineer", "Artificial Intelligence Engineer",
	"AI Researcher", "Data Researcher", "Predictive Analytics",
	"Data Science", "Analytics Consultant", "Data Miner", "Data Specialist",
	"Data Modeler",
	// Russian titles as they appear on hh.kz
	"Аналитик данных", "Дата сайентист", "Инженер данных",
	"Инженер машинного обучения", "BI-аналитик",
}
