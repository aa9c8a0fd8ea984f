package mft

import "github.com/Velocidex/ordereddict"

// Describe renders rec as an ordered key/value dump, for tools that print
// or export a record's decoded fields without caring about the FileRecord
// struct shape. The field order matches the order an analyst reads a
// record report in: identity first, then timestamps, then size and
// extent summary. Grounded on how Velociraptor surfaces parsed NTFS
// attributes through ordereddict.Dict rather than a fixed struct.
func (rec *FileRecord) Describe() *ordereddict.Dict {
	d := ordereddict.NewDict().
		Set("id", rec.ID).
		Set("name", rec.Name).
		Set("namespace", rec.NameNamespace).
		Set("parent_reference", rec.ParentReference).
		Set("flags", rec.Flags).
		Set("link_count", rec.LinkCount).
		Set("creation_time", rec.CreationTime).
		Set("modified_time", rec.ModifiedTime).
		Set("size", rec.Size).
		Set("resident", len(rec.ResidentData) > 0).
		Set("run_count", len(rec.DataRuns))

	return d
}
