package errors

// UserCategory is the small, provider-independent set of failure kinds
// presentation code needs to know about.
type UserCategory string

const (
	CategoryNone          UserCategory = ""
	CategoryNotFound      UserCategory = "not_found"
	CategoryFailure       UserCategory = "failure"
	CategoryInputTooShort UserCategory = "input_too_short"
	CategoryNoInput       UserCategory = "no_input"
)

var categoryMessages = map[UserCategory]string{
	CategoryNotFound:      "City not found",
	CategoryFailure:       "Failed to fetch weather data",
	CategoryInputTooShort: "City name is too short",
	CategoryNoInput:       "Please enter a city name",
}

// UserCategoryOf maps any error to exactly one user-facing category.
// A nil error maps to CategoryNone.
func UserCategoryOf(err error) UserCategory {
	if err == nil {
		return CategoryNone
	}
	switch TypeOf(err) {
	case NotFoundError:
		return CategoryNotFound
	case InputTooShortError:
		return CategoryInputTooShort
	case NoInputError:
		return CategoryNoInput
	default:
		return CategoryFailure
	}
}

// Message returns the human-readable text for the category
func (c UserCategory) Message() string {
	return categoryMessages[c]
}
