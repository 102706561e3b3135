package adapters

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"llm-game-gen/internal/shared"
	"llm-game-gen/internal/types"
)

// LockFileAdapter reads and writes the pinned-hash lock format:
//
//	<name>==<version> \
//	    --hash=sha256:<hex> \
//	    --hash=sha256:<hex>
//	    # via <dependent>
//
// Records with several dependents spread the via block over indented
// continuation lines. The file is written wholesale in canonical order;
// Parse and Render round-trip.
type LockFileAdapter struct{}

func NewLockFileAdapter() LockFileAdapter {
	return LockFileAdapter{}
}

const rootCommentPrefix = "locked packs for "

func (a LockFileAdapter) ReadLock(path string) (types.LockFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("lock file not found").
			WithCause(err)
	}
	return ParseLock(string(content))
}

func (a LockFileAdapter) WriteLock(path string, lock types.LockFile) error {
	return os.WriteFile(path, []byte(RenderLock(lock)), 0644)
}

// ParseLock decodes a lock document from its textual form.
func ParseLock(content string) (types.LockFile, error) {
	lock := types.LockFile{}
	var current *types.LockRecord
	inVia := false

	flush := func() {
		if current != nil {
			lock.Records = append(lock.Records, *current)
			current = nil
		}
	}

	for number, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			inVia = false
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "#"):
			comment := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
			if current == nil {
				if strings.HasPrefix(comment, rootCommentPrefix) {
					lock.Root = strings.TrimSpace(strings.TrimPrefix(comment, rootCommentPrefix))
				}
				continue
			}
			if rest, ok := strings.CutPrefix(comment, "via"); ok {
				inVia = true
				if dependent := strings.TrimSpace(rest); dependent != "" {
					current.Via = append(current.Via, dependent)
				}
				continue
			}
			if inVia && comment != "" {
				current.Via = append(current.Via, comment)
			}
		case strings.HasPrefix(trimmed, "--hash="):
			inVia = false
			if current == nil {
				return types.LockFile{}, lockParseError(number+1, "hash line outside a record")
			}
			value := strings.TrimSpace(strings.TrimSuffix(trimmed, "\\"))
			digest, ok := strings.CutPrefix(value, "--hash=sha256:")
			if !ok {
				return types.LockFile{}, lockParseError(number+1, "hash line must be of the form --hash=sha256:<hex>")
			}
			current.Hashes = append(current.Hashes, strings.TrimSpace(digest))
		default:
			inVia = false
			flush()
			header := strings.TrimSpace(strings.TrimSuffix(trimmed, "\\"))
			name, version, ok := strings.Cut(header, "==")
			if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(version) == "" {
				return types.LockFile{}, lockParseError(number+1, "record header must be of the form <name>==<version>")
			}
			current = &types.LockRecord{
				Name:    strings.TrimSpace(name),
				Version: strings.TrimSpace(version),
			}
		}
	}
	flush()
	if len(lock.Records) == 0 {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock file contains no records")
	}
	return lock, nil
}

// RenderLock encodes a lock document canonically: records sorted by
// normalized name, hashes and via annotations sorted within a record.
func RenderLock(lock types.LockFile) string {
	records := append([]types.LockRecord(nil), lock.Records...)
	sort.Slice(records, func(i, j int) bool {
		return shared.NormalizePackName(records[i].Name) < shared.NormalizePackName(records[j].Name)
	})

	var b strings.Builder
	if lock.Root != "" {
		fmt.Fprintf(&b, "# %s%s\n", rootCommentPrefix, shared.NormalizePackName(lock.Root))
	}
	b.WriteString("# generated wholesale by `llm-game-gen lock`; do not edit by hand\n")
	for _, record := range records {
		hashes := append([]string(nil), record.Hashes...)
		sort.Strings(hashes)
		fmt.Fprintf(&b, "%s==%s", shared.NormalizePackName(record.Name), record.Version)
		for _, hash := range hashes {
			b.WriteString(" \\\n")
			fmt.Fprintf(&b, "    --hash=sha256:%s", hash)
		}
		b.WriteString("\n")
		via := make([]string, 0, len(record.Via))
		for _, dependent := range record.Via {
			via = append(via, shared.NormalizePackName(dependent))
		}
		sort.Strings(via)
		switch {
		case len(via) == 1:
			fmt.Fprintf(&b, "    # via %s\n", via[0])
		case len(via) > 1:
			b.WriteString("    # via\n")
			for _, dependent := range via {
				fmt.Fprintf(&b, "    #   %s\n", dependent)
			}
		}
	}
	return b.String()
}

func lockParseError(line int, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("line %d: %s", line, msg))
}
