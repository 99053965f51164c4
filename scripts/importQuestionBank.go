package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"examportal/config"
	"examportal/database"
	"examportal/models"

	"gorm.io/datatypes"
)

// Imports the question bank from QuestionBank.csv. Expected columns:
// course,question,option1..option4,correct_index. Empty trailing option
// columns are skipped, so three-option questions are fine.
func main() {
	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	file, err := os.Open("QuestionBank.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV file: %v", err)
	}

	imported := 0
	for i, record := range records {
		if i == 0 {
			continue // header row
		}
		if len(record) < 7 {
			log.Printf("Skipping row %d: expected 7 columns, got %d", i+1, len(record))
			continue
		}

		courseName := strings.TrimSpace(record[0])
		questionText := strings.TrimSpace(record[1])

		options := []string{}
		for _, opt := range record[2:6] {
			if strings.TrimSpace(opt) != "" {
				options = append(options, strings.TrimSpace(opt))
			}
		}

		correctOption, err := strconv.Atoi(strings.TrimSpace(record[6]))
		if err != nil || correctOption < 0 || correctOption >= len(options) {
			log.Printf("Skipping row %d: invalid correct_index %q", i+1, record[6])
			continue
		}

		var course models.Course
		if err := db.Where("name = ?", courseName).FirstOrCreate(&course, models.Course{Name: courseName}).Error; err != nil {
			log.Printf("Failed to create course %q: %v", courseName, err)
			continue
		}

		optionsJSON, err := json.Marshal(options)
		if err != nil {
			log.Printf("Skipping row %d: %v", i+1, err)
			continue
		}

		question := models.Question{
			CourseID:      course.ID,
			QuestionText:  questionText,
			Options:       datatypes.JSON(optionsJSON),
			CorrectOption: correctOption,
		}

		if err := db.Create(&question).Error; err != nil {
			log.Printf("Failed to create question on row %d: %v", i+1, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d questions.", imported)
}
