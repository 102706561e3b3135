package types

// LockRecord pins one game-data pack: a name, an exact PEP 440 version,
// one or more sha256 content digests of the pack file, and the set of
// dependents ("via") that introduced the pack into the lock.
type LockRecord struct {
	Name    string
	Version string
	Hashes  []string
	Via     []string
}

// LockFile is a wholesale snapshot of a pack set. Lock files are never
// edited in place; `lock` regenerates the whole file from the data dir.
type LockFile struct {
	Root    string
	Records []LockRecord
}

// Record returns the record with the given normalized name, if present.
func (l LockFile) Record(name string) (LockRecord, bool) {
	for _, record := range l.Records {
		if record.Name == name {
			return record, true
		}
	}
	return LockRecord{}, false
}
