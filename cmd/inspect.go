package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/C-Sto/gomftrecover/diskio"
	"github.com/C-Sto/gomftrecover/mft"
)

// Inspect parses the single record named by s.RecordID and prints its
// ordered field dump as JSON.
func Inspect(s Settings) error {
	reader, err := diskio.Open(s.Image)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer reader.Close()

	offset := s.MFTOffset

	if s.UseBootSector {
		boot, err := mft.ReadBootSector(reader)
		if err != nil {
			return fmt.Errorf("reading boot sector: %w", err)
		}
		offset = boot.MFTOffset()
	}

	slotOffset := offset + s.RecordID*mft.RecordSize

	rec, err := mft.ParseRecord(reader, slotOffset)
	if err != nil {
		return fmt.Errorf("reading record %d: %w", s.RecordID, err)
	}
	if rec == nil {
		return fmt.Errorf("record %d: not a valid MFT record", s.RecordID)
	}

	out, err := json.MarshalIndent(rec.Describe(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
