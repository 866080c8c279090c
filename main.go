package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pivolan/aviation_accidents/config"
)

func main() {
	cfg := config.GetConfig()

	inputPath := cfg.InputFile
	outputDir := cfg.OutputDir
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outputDir = os.Args[2]
	}
	if inputPath == "" {
		fmt.Println("usage: aviation_accidents <accidents.xlsx|csv> [output_dir]")
		os.Exit(2)
	}

	fmt.Println("started")
	if err := RunPipeline(inputPath, outputDir, cfg.MinAccidentsSafety); err != nil {
		log.Fatalln("pipeline failed:", err)
	}
	fmt.Println("done, artifacts in", outputDir)
}
