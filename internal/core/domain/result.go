package domain

// Category is the bucket a token is classified into.
type Category string

const (
	CategoryOdd      Category = "odd"
	CategoryEven     Category = "even"
	CategoryAlphabet Category = "alphabet"
	CategorySpecial  Category = "special"
)

// Categories lists every bucket in output order.
var Categories = []Category{CategoryOdd, CategoryEven, CategoryAlphabet, CategorySpecial}

// ClassificationResult is the aggregate produced for one input list.
type ClassificationResult struct {
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// Len returns the number of tokens held across all buckets.
func (r ClassificationResult) Len() int {
	return len(r.OddNumbers) + len(r.EvenNumbers) + len(r.Alphabets) + len(r.SpecialCharacters)
}

// Response is a ClassificationResult stamped with the configured identity.
type Response struct {
	IsSuccess  bool   `json:"is_success"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
	ClassificationResult
}
