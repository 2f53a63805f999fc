package main

import (
	"caces/config"
	"caces/database"
	"caces/models"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Imports a question bank CSV, either from a local file passed as the
// first argument or from QUESTION_BANK_URL when no argument is given.
// Expected columns: text, bloc_code, correct_answer, options,
// is_eliminatory, time_limit, image_path.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	reader, closer, err := openSource()
	if err != nil {
		log.Fatalf("Failed to open question bank: %v", err)
	}
	defer closer()

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	db := database.Database.Db

	// Cache bloc codes so each row is one lookup at most
	blocByCode := make(map[string]uint)
	var blocs []models.Bloc
	db.Where("is_deleted = ?", false).Find(&blocs)
	for _, b := range blocs {
		blocByCode[b.CodeBloc] = b.ID
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		text := getField(row, headerIndex, "text")
		correct := getField(row, headerIndex, "correct_answer")
		if text == "" || correct == "" {
			skipped++
			continue
		}

		var blocID *uint
		if code := getField(row, headerIndex, "bloc_code"); code != "" {
			id, ok := blocByCode[code]
			if !ok {
				log.Printf("Unknown bloc code %q, importing question as orphan", code)
			} else {
				blocID = &id
			}
		}

		question := models.Question{
			Text:          text,
			BlocID:        blocID,
			CorrectAnswer: correct,
			Options:       getField(row, headerIndex, "options"),
			IsEliminatory: parseBool(getField(row, headerIndex, "is_eliminatory")),
			TimeLimit:     parseInt(getField(row, headerIndex, "time_limit"), 30),
			ImagePath:     getField(row, headerIndex, "image_path"),
			IsDeleted:     false,
		}

		var existing models.Question
		result := db.Where("text = ? AND is_deleted = ?", question.Text, false).First(&existing)

		if result.Error != nil {
			if err := db.Create(&question).Error; err != nil {
				log.Printf("Error inserting question %q: %v", question.Text, err)
				continue
			}
			inserted++
		} else {
			existing.BlocID = question.BlocID
			existing.CorrectAnswer = question.CorrectAnswer
			existing.Options = question.Options
			existing.IsEliminatory = question.IsEliminatory
			existing.TimeLimit = question.TimeLimit
			existing.ImagePath = question.ImagePath

			if err := db.Save(&existing).Error; err != nil {
				log.Printf("Error updating question %q: %v", question.Text, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
}

// openSource returns a reader over the local file argument, or downloads
// the remote catalog when none is given.
func openSource() (io.Reader, func(), error) {
	if len(os.Args) > 1 {
		file, err := os.Open(os.Args[1])
		if err != nil {
			return nil, nil, err
		}
		return file, func() { file.Close() }, nil
	}

	url := config.AppConfig.QuestionBankURL
	if url == "" {
		log.Fatal("No CSV file argument and QUESTION_BANK_URL is not set")
	}

	log.Printf("Downloading question bank from %s", url)
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, nil, err
	}
	if resp.IsError() {
		log.Fatalf("Download failed with status %d", resp.StatusCode())
	}
	return strings.NewReader(resp.String()), func() {}, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return val
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "oui", "yes":
		return true
	}
	return false
}
