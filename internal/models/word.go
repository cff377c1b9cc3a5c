package models

// Category is a group of secret words with labels in both supported languages
type Category struct {
	ID string `json:"id"`
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Label returns the category name for the given language
func (c *Category) Label(lang Language) string {
	if lang == LanguageEnglish {
		return c.EN
	}
	return c.AR
}

// WordPair is a single secret word belonging to a category
type WordPair struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Secret     string `json:"secret"`
}

// WordBank is a read-only snapshot of the categories and words available to SYSTEM rounds
type WordBank struct {
	Categories []*Category `json:"categories"`
	Words      []*WordPair `json:"words"`
}

// FindCategory returns the category with the given ID, or nil
func (b *WordBank) FindCategory(id string) *Category {
	for _, c := range b.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// WordsIn returns the words whose category is in categoryIDs
func (b *WordBank) WordsIn(categoryIDs []string) []*WordPair {
	selected := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = true
	}

	words := make([]*WordPair, 0)
	for _, w := range b.Words {
		if selected[w.CategoryID] {
			words = append(words, w)
		}
	}
	return words
}

// Language is a supported display language
type Language string

const (
	// LanguageArabic is the default language
	LanguageArabic Language = "ar"

	// LanguageEnglish is the secondary language
	LanguageEnglish Language = "en"
)

// IsValid reports whether the language is supported
func (l Language) IsValid() bool {
	return l == LanguageArabic || l == LanguageEnglish
}

// GeneralLabel is the category name shown when a word's category is unknown
func GeneralLabel(lang Language) string {
	if lang == LanguageEnglish {
		return "General"
	}
	return "فئة عامة"
}
