package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/C-Sto/gomftrecover/cmd"
	"github.com/C-Sto/gomftrecover/pkg/logger"
)

func main() {
	s := cmd.Settings{}

	flag.StringVar(&s.Image, "image", "", "Path to the NTFS image or device to read (required)")
	flag.Int64Var(&s.MFTOffset, "mft-offset", 0, "Byte offset of the first $MFT record, if -boot-sector is not used")
	flag.Uint64Var(&s.ClusterSize, "cluster-size", 0, "Volume cluster size in bytes, if -boot-sector is not used")
	flag.BoolVar(&s.UseBootSector, "boot-sector", false, "Derive MFT offset and cluster size from the volume's boot sector")
	flag.Int64Var(&s.RecordID, "record", -1, "Inspect a single record by slot index instead of scanning")
	flag.StringVar(&s.Outfile, "out", "", "Write the scan report to this file instead of stdout")
	flag.Parse()

	if s.Image == "" {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	if s.RecordID >= 0 {
		err = cmd.Inspect(s)
	} else {
		err = cmd.Scan(s)
	}

	if err != nil {
		logger.Logger.Sugar().Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
