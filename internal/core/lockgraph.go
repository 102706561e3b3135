package core

import (
	"context"
	"fmt"
	"regexp"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"llm-game-gen/internal/shared"
	"llm-game-gen/internal/types"
)

var sha256Hex = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidateLock checks the structural invariants of a lock snapshot:
// every record carries a parseable PEP 440 version and at least one
// well-formed sha256 digest, normalized names are unique, and the via
// graph is closed (every via reference names another record in the same
// file or the root project itself).
func ValidateLock(ctx context.Context, lock types.LockFile) error {
	assert.NotEmpty(ctx, lock.Root, "lock root must be set")
	if len(lock.Records) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock file must contain at least one record")
	}
	root := shared.NormalizePackName(lock.Root)
	names := map[string]struct{}{}
	for _, record := range lock.Records {
		name := shared.NormalizePackName(record.Name)
		if name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("lock record has an empty name")
		}
		if _, exists := names[name]; exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate lock record %s", name))
		}
		names[name] = struct{}{}
	}
	for _, record := range lock.Records {
		if err := validateRecord(record); err != nil {
			return err
		}
		for _, via := range record.Via {
			dependent := shared.NormalizePackName(via)
			if dependent == root {
				continue
			}
			if _, exists := names[dependent]; !exists {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("record %s is via %s, which is not in the lock file", record.Name, via))
			}
		}
	}
	return nil
}

func validateRecord(record types.LockRecord) error {
	if _, err := pep440.Parse(record.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("record %s has an invalid version %q", record.Name, record.Version)).
			WithCause(err)
	}
	if len(record.Hashes) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("record %s has no content hashes", record.Name))
	}
	for _, hash := range record.Hashes {
		if !sha256Hex.MatchString(hash) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("record %s has a malformed sha256 digest %q", record.Name, hash))
		}
	}
	return nil
}
