package errors

// Error codes for the AML toolchain.
// These codes are used in error messages and documentation
// to provide consistent error identification across the tools.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0900-E0999: Tooling and configuration errors

const (
	// E0001: No lexical rule matches the input
	ErrorIllegalCharacter = "E0001"

	// E0002: A numeric literal could not be converted
	ErrorMalformedNumber = "E0002"

	// E0900: Keyword table could not be loaded
	ErrorKeywordConfig = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorIllegalCharacter:
		return "Character does not start any token of the language"
	case ErrorMalformedNumber:
		return "Numeric literal is out of range or badly formed"
	case ErrorKeywordConfig:
		return "Keyword table file is missing or invalid"
	default:
		return "Unknown error code"
	}
}
