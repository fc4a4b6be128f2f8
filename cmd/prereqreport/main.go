package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"course-catalog/internal/catalog"
	"course-catalog/internal/config"
	"course-catalog/internal/export"
	"course-catalog/internal/report"
	"course-catalog/internal/sftpclient"
)

func main() {
	cfg := config.Load()

	var (
		coursesPath = flag.String("courses", cfg.CoursesFile, "comma-delimited course names file")
		prereqsPath = flag.String("prereqs", cfg.PrereqsFile, "tab-delimited prerequisite schedule file")
		csvPath     = flag.String("csv", "", "also export the merged catalog as CSV (.br suffix enables brotli)")
		xlsxPath    = flag.String("xlsx", "", "also export the merged catalog as an Excel workbook")
		uploadSFTP  = flag.Bool("sftp", false, "upload the exported files via SFTP")
	)
	flag.Parse()

	cat, diags := catalog.LoadCourses(*coursesPath)
	for _, d := range diags {
		log.Print(d)
	}

	for _, d := range catalog.AnnotatePrereqs(*prereqsPath, cat) {
		log.Print(d)
	}

	report.Write(os.Stdout, cat)

	courses := cat.Courses()
	artifacts := artifactPaths(*csvPath, *xlsxPath)

	if *csvPath != "" {
		ensureDir(*csvPath)
		if err := export.WriteCatalogCSVFile(*csvPath, courses); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d courses to %s", len(courses), *csvPath)
	}

	if *xlsxPath != "" {
		ensureDir(*xlsxPath)
		if err := export.WriteCatalogXLSX(*xlsxPath, courses); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d courses to %s", len(courses), *xlsxPath)
	}

	if *uploadSFTP {
		if len(artifacts) == 0 {
			log.Fatal("-sftp requires -csv or -xlsx")
		}

		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		for _, a := range artifacts {
			remoteName := filepath.Base(a)

			upCtx, upCancel := context.WithTimeout(context.Background(), 5*time.Minute)
			err := sftpclient.UploadFile(upCtx, upCfg, a, remoteName)
			upCancel()
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
		}
	}
}

// artifactPaths collects the non-empty export paths in a fixed order.
func artifactPaths(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func ensureDir(outPath string) {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
}
