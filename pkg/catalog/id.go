package catalog

import (
	"strings"
	"unicode"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// ValidateID checks that id can safely name an entry and derive a stored file
// name: it must be non-empty and contain neither whitespace nor a path
// separator. The YAML merge key "<<" is rejected since it cannot be an index key.
func ValidateID(id string) error {
	return validateName("id", id)
}

// ValidateCategoryName applies the identifier rules to a sub-category name and
// additionally rejects names that cannot be used as a directory of their own.
func ValidateCategoryName(name string) error {
	if err := validateName("category", name); err != nil {
		return err
	}
	if name == "." || name == ".." || name == constants.IndexFileName {
		return errors.NewValidationError("category", name, "reserved name")
	}
	return nil
}

const yamlMergeKey = "<<"

func validateName(field, value string) error {
	switch {
	case value == "":
		return errors.NewValidationError(field, value, "must not be empty")
	case strings.IndexFunc(value, unicode.IsSpace) >= 0:
		return errors.NewValidationError(field, value, "must not contain whitespace")
	case strings.ContainsAny(value, `/\`):
		return errors.NewValidationError(field, value, "must not contain a path separator")
	case value == yamlMergeKey:
		return errors.NewValidationError(field, value, "reserved name")
	}
	return nil
}
