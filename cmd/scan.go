package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/C-Sto/gomftrecover/diskio"
	"github.com/C-Sto/gomftrecover/mft"
	"github.com/C-Sto/gomftrecover/pkg/logger"
)

// Scan walks sequential MFT record slots starting at s.MFTOffset,
// streaming each parsed FileRecord into a channel the way the teacher's
// ditreader streams DumpedHash values out of its own background
// goroutine, and writes a one-line-per-record report either to stdout or
// to s.Outfile.
//
// This is a thin demonstration of the core's calling convention
// (ParseRecord once per slot), not the scan controller of section 5 of
// the design: a real one would parallelize ParseRecord across a worker
// pool and bound the walk by the volume's own $MFT size rather than
// running until the reader reports a short read.
func Scan(s Settings) error {
	reader, err := diskio.Open(s.Image)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer reader.Close()

	offset := s.MFTOffset
	clusterSize := s.ClusterSize

	if s.UseBootSector {
		boot, err := mft.ReadBootSector(reader)
		if err != nil {
			return fmt.Errorf("reading boot sector: %w", err)
		}
		offset = boot.MFTOffset()
		clusterSize = boot.ClusterSize()
	}

	if clusterSize == 0 {
		return fmt.Errorf("cluster size must be non-zero (pass -cluster-size or -boot-sector)")
	}

	records := make(chan *mft.FileRecord, 64)

	go func() {
		defer close(records)
		log := logger.Logger.Sugar()
		for slot := offset; ; slot += mft.RecordSize {
			rec, err := mft.ParseRecord(reader, slot)
			if err != nil {
				log.Infof("stopping scan at offset %d: %v", slot, err)
				return
			}
			if rec == nil {
				continue
			}
			records <- rec
		}
	}()

	if s.Outfile != "" {
		return writeReportFile(records, s.Outfile)
	}

	writeReportConsole(records)
	return nil
}

func writeReportConsole(records <-chan *mft.FileRecord) {
	for rec := range records {
		fmt.Print(describeLine(rec))
	}
}

func writeReportFile(records <-chan *mft.FileRecord, outfile string) error {
	file, err := os.OpenFile(outfile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer file.Close()

	var out strings.Builder
	for rec := range records {
		out.WriteString(describeLine(rec))
	}

	_, err = file.WriteString(out.String())
	return err
}

func describeLine(rec *mft.FileRecord) string {
	return fmt.Sprintf("%d\t%s\tsize=%d\truns=%d\n", rec.ID, rec.Name, rec.Size, len(rec.DataRuns))
}
