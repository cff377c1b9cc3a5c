package words

import "github.com/KirkDiggler/minimposter/internal/models"

var defaultCategories = []*models.Category{
	{ID: "country", AR: "دول", EN: "Countries"},
	{ID: "food", AR: "أكل", EN: "Food"},
	{ID: "animal", AR: "حيوانات", EN: "Animals"},
	{ID: "job", AR: "مهن", EN: "Jobs"},
	{ID: "place", AR: "أماكن", EN: "Places"},
}

var defaultWords = []*models.WordPair{
	{ID: "w_country_1", CategoryID: "country", Secret: "مصر"},
	{ID: "w_country_2", CategoryID: "country", Secret: "السعودية"},
	{ID: "w_country_3", CategoryID: "country", Secret: "المغرب"},
	{ID: "w_country_4", CategoryID: "country", Secret: "اليابان"},
	{ID: "w_country_5", CategoryID: "country", Secret: "البرازيل"},
	{ID: "w_country_6", CategoryID: "country", Secret: "إيطاليا"},
	{ID: "w_food_1", CategoryID: "food", Secret: "كبسة"},
	{ID: "w_food_2", CategoryID: "food", Secret: "فلافل"},
	{ID: "w_food_3", CategoryID: "food", Secret: "بيتزا"},
	{ID: "w_food_4", CategoryID: "food", Secret: "سوشي"},
	{ID: "w_food_5", CategoryID: "food", Secret: "كنافة"},
	{ID: "w_animal_1", CategoryID: "animal", Secret: "جمل"},
	{ID: "w_animal_2", CategoryID: "animal", Secret: "زرافة"},
	{ID: "w_animal_3", CategoryID: "animal", Secret: "بطريق"},
	{ID: "w_animal_4", CategoryID: "animal", Secret: "أسد"},
	{ID: "w_job_1", CategoryID: "job", Secret: "طبيب"},
	{ID: "w_job_2", CategoryID: "job", Secret: "طيار"},
	{ID: "w_job_3", CategoryID: "job", Secret: "معلم"},
	{ID: "w_job_4", CategoryID: "job", Secret: "طباخ"},
	{ID: "w_place_1", CategoryID: "place", Secret: "مستشفى"},
	{ID: "w_place_2", CategoryID: "place", Secret: "مطار"},
	{ID: "w_place_3", CategoryID: "place", Secret: "مدرسة"},
	{ID: "w_place_4", CategoryID: "place", Secret: "شاطئ"},
}

// DefaultBank returns a copy of the built-in word bank
func DefaultBank() *models.WordBank {
	bank := &models.WordBank{
		Categories: make([]*models.Category, len(defaultCategories)),
		Words:      make([]*models.WordPair, len(defaultWords)),
	}
	for i, c := range defaultCategories {
		cp := *c
		bank.Categories[i] = &cp
	}
	for i, w := range defaultWords {
		cp := *w
		bank.Words[i] = &cp
	}
	return bank
}
