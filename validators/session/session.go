package sessionValidator

import (
	"caces/middleware"
	sessionModels "caces/models/session"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type createSessionRequest struct {
	NomSession    string    `json:"nom_session" validate:"required,min=3"`
	DateSession   time.Time `json:"date_session" validate:"required"`
	ReferentielID uint      `json:"referentiel_id" validate:"required,gt=0"`
	BlocIDs       []uint    `json:"bloc_ids" validate:"required,min=1,dive,gt=0"`
	TrainerID     *uint     `json:"trainer_id"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Participants  []struct {
		Nom                    string `json:"nom" validate:"required"`
		Prenom                 string `json:"prenom"`
		IdentificationCode     string `json:"identification_code"`
		AssignedGlobalDeviceID *uint  `json:"assigned_global_device_id"`
	} `json:"participants" validate:"dive"`
}

// CreateSession validates the session payload and passes the assembled
// model to the controller
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "NomSession":
					errors["nom_session"] = "Session name must be at least 3 characters long!"
				case "DateSession":
					errors["date_session"] = "Session date is required!"
				case "ReferentielID":
					errors["referentiel_id"] = "Referentiel is required!"
				case "BlocIDs":
					errors["bloc_ids"] = "At least one bloc must be selected!"
				case "Nom":
					errors["participants"] = "Every participant needs a name!"
				default:
					errors[fe.Field()] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		sess := &sessionModels.Session{
			NomSession:    reqData.NomSession,
			DateSession:   reqData.DateSession,
			ReferentielID: reqData.ReferentielID,
			TrainerID:     reqData.TrainerID,
			Location:      reqData.Location,
			Notes:         reqData.Notes,
		}
		sess.SetBlocIDs(reqData.BlocIDs)
		for _, p := range reqData.Participants {
			sess.Participants = append(sess.Participants, sessionModels.Participant{
				Nom:                    p.Nom,
				Prenom:                 p.Prenom,
				IdentificationCode:     p.IdentificationCode,
				AssignedGlobalDeviceID: p.AssignedGlobalDeviceID,
			})
		}

		c.Locals("validatedSession", sess)
		return c.Next()
	}
}
