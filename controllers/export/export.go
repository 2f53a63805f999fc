package exportController

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"caces/database"
	"caces/middleware"
	"caces/models"
	sessionModels "caces/models/session"
	"caces/reports"

	"github.com/gofiber/fiber/v2"
)

// buildResultsCSV renders the raw result rows of one session
func buildResultsCSV(results []sessionModels.SessionResult, questions []models.Question) ([]byte, error) {
	questionText := make(map[uint]string, len(questions))
	for _, q := range questions {
		questionText[q.ID] = q.Text
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"boitier", "question_id", "question", "answer", "is_correct", "points"}); err != nil {
		return nil, err
	}
	for _, r := range results {
		points := ""
		if r.PointsObtained != nil {
			points = strconv.FormatFloat(*r.PointsObtained, 'f', -1, 64)
		}
		row := []string{
			r.ParticipantIDBoitier,
			strconv.FormatUint(uint64(r.QuestionID), 10),
			questionText[r.QuestionID],
			r.Answer,
			strconv.FormatBool(r.IsCorrect),
			points,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// buildScoresCSV renders per-participant scores and verdicts
func buildScoresCSV(sess *sessionModels.Session, results []sessionModels.SessionResult, questions []models.Question, themes []models.Theme, blocs []models.Bloc, devices map[uint]string, opts reports.Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"nom", "prenom", "boitier", "score", "reussite"}); err != nil {
		return nil, err
	}
	for i := range sess.Participants {
		p := &sess.Participants[i]

		serial := ""
		var pResults []sessionModels.SessionResult
		if p.AssignedGlobalDeviceID != nil {
			if s, ok := devices[*p.AssignedGlobalDeviceID]; ok {
				serial = s
				for _, r := range results {
					if r.ParticipantIDBoitier == serial {
						pResults = append(pResults, r)
					}
				}
			}
		}

		score := reports.CalculateParticipantScore(pResults, questions)
		themeScores := reports.CalculateThemeScores(pResults, questions, themes, blocs)
		success := reports.DetermineIndividualSuccess(score, themeScores, opts)
		if success && opts.StrictEliminatory && reports.HasEliminatoryFailure(pResults, questions) {
			success = false
		}

		verdict := "ECHEC"
		if success {
			verdict = "REUSSITE"
		}
		row := []string{p.Nom, p.Prenom, serial, strconv.FormatFloat(score, 'f', 1, 64), verdict}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// loadSessionExportData fetches everything a session export needs
func loadSessionExportData(id int) (*sessionModels.Session, []sessionModels.SessionResult, []models.Question, []models.Theme, []models.Bloc, map[uint]string, reports.Options, error) {
	db := database.Database.Db

	var sess sessionModels.Session
	if err := db.Where("id = ? AND is_deleted = ?", id, false).
		Preload("Participants", "is_deleted = ?", false).First(&sess).Error; err != nil {
		return nil, nil, nil, nil, nil, nil, reports.Options{}, err
	}

	var results []sessionModels.SessionResult
	if err := db.Where("session_id = ? AND is_deleted = ?", sess.ID, false).Find(&results).Error; err != nil {
		return nil, nil, nil, nil, nil, nil, reports.Options{}, err
	}

	var questions []models.Question
	if blocIDs := sess.BlocIDs(); len(blocIDs) > 0 {
		if err := db.Where("bloc_id IN ? AND is_deleted = ?", blocIDs, false).Find(&questions).Error; err != nil {
			return nil, nil, nil, nil, nil, nil, reports.Options{}, err
		}
	}

	var themes []models.Theme
	var blocs []models.Bloc
	var devices []models.VotingDevice
	db.Where("is_deleted = ?", false).Find(&themes)
	db.Where("is_deleted = ?", false).Find(&blocs)
	db.Where("is_deleted = ?", false).Find(&devices)

	var settings models.AdminSettings
	opts := reports.DefaultOptions()
	if err := db.First(&settings).Error; err == nil {
		opts = reports.Options{
			PassThreshold:     settings.PassThreshold,
			ThemeFloor:        settings.ThemeFloor,
			StrictEliminatory: settings.StrictEliminatory,
		}
	}

	return &sess, results, questions, themes, blocs, reports.BuildDeviceMap(devices), opts, nil
}

// ExportSessionResultsCSV streams one session's raw results as CSV
func ExportSessionResultsCSV(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	sess, results, questions, _, _, _, _, err := loadSessionExportData(id)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	data, err := buildResultsCSV(results, questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build CSV!", nil)
	}

	filename := fmt.Sprintf("resultats-session-%d.csv", sess.ID)
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// ExportSessionArchive streams a ZIP with results, scores and a manifest
func ExportSessionArchive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session ID!", nil)
	}

	sess, results, questions, themes, blocs, devices, opts, err := loadSessionExportData(id)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	resultsCSV, err := buildResultsCSV(results, questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build archive!", nil)
	}
	scoresCSV, err := buildScoresCSV(sess, results, questions, themes, blocs, devices, opts)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build archive!", nil)
	}

	stats := reports.CalculateSessionStats(sess, results, questions, themes, blocs, devices, opts)
	manifest, _ := json.MarshalIndent(fiber.Map{
		"session_id":    sess.ID,
		"nom_session":   sess.NomSession,
		"date_session":  sess.DateSession,
		"status":        sess.Status,
		"participants":  len(sess.Participants),
		"average_score": stats.AverageScore,
		"success_rate":  stats.SuccessRate,
		"exported_at":   time.Now(),
	}, "", "  ")

	archive, err := buildArchive(resultsCSV, scoresCSV, manifest)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build archive!", nil)
	}

	filename := fmt.Sprintf("session-%d-%s.zip", sess.ID, time.Now().Format("20060102"))
	c.Set("Content-Type", "application/zip")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(archive)
}

// buildArchive assembles the export ZIP. Entries go in a fixed order so
// the same session always produces the same archive bytes.
func buildArchive(resultsCSV, scoresCSV, manifest []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct {
		name string
		data []byte
	}{
		{"resultats.csv", resultsCSV},
		{"scores.csv", scoresCSV},
		{"manifest.json", manifest},
	}
	for _, file := range files {
		f, err := zw.Create(file.name)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(file.data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
