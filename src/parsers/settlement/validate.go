package settlement

import (
	"github.com/username/settlehub/src/parsers/columns"
)

// ValidateHeaders runs the platform guard and then checks that every required
// field of the profile resolves against the file's headers.
func ValidateHeaders(headers []string, profile Profile, resolver *columns.Resolver, explicit columns.Mapping) error {
	if g := profile.Guard; g != nil {
		present := make(map[string]bool, len(headers))
		for _, h := range headers {
			present[columns.NormalizeHeader(h)] = true
		}
		if present[columns.NormalizeHeader(g.ForeignFeeColumn)] && !present[columns.NormalizeHeader(g.NativeFeeColumn)] {
			return &WrongPlatformError{Selected: profile.Marketplace, Suggested: g.Suggested}
		}
	}

	var missing []string
	for _, field := range profile.RequiredFields {
		if _, ok := resolver.Resolve(headers, field, explicit); !ok {
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Marketplace: profile.Marketplace, Fields: missing}
	}
	return nil
}
