package catalog

import (
	"github.com/agentstation/termipaper/pkg/errors"
)

// Resource names carried by the typed errors this package returns.
const (
	ResourceEntry      = "entry"
	ResourceSourceFile = "source file"
	ResourceStoredFile = "stored file"
	ResourceCategory   = "category"
	ResourceIndex      = "index"
)

// IsInvalidIdentifier reports whether err rejects an entry identifier.
func IsInvalidIdentifier(err error) bool {
	var ve *errors.ValidationError
	return errors.As(err, &ve) && ve.Field == "id"
}

// IsDuplicate reports whether err rejects an add on an existing identifier.
func IsDuplicate(err error) bool {
	var ae *errors.AlreadyExistsError
	return errors.As(err, &ae) && ae.Resource == ResourceEntry
}

// IsEntryNotFound reports whether err is a lookup miss on an entry identifier.
func IsEntryNotFound(err error) bool {
	return isNotFound(err, ResourceEntry)
}

// IsSourceFileNotFound reports whether err is a missing ingestion source.
func IsSourceFileNotFound(err error) bool {
	return isNotFound(err, ResourceSourceFile)
}

// IsCategoryNotFound reports whether err is an unknown category path.
func IsCategoryNotFound(err error) bool {
	return isNotFound(err, ResourceCategory)
}

func isNotFound(err error, resource string) bool {
	var nf *errors.NotFoundError
	return errors.As(err, &nf) && nf.Resource == resource
}
