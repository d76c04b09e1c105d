package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) , + #
var skillNameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),+#-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("skill_name", SkillName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// SkillName validates that a string is a plausible skill name ("Go", "C++",
// "CI/CD"). Empty values pass; combine with required when needed.
func SkillName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return skillNameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
