package remote

import (
	"context"
	"net/http"
	"strconv"

	"fittracker/fitness-app/internal/domain"
)

const exercisesPath = "exercicios"

// exerciseDTO is the wire form of an exercise.
type exerciseDTO struct {
	ID          int            `json:"id,omitempty"`
	Name        string         `json:"nome"`
	Days        string         `json:"dias"`
	Description string         `json:"descricao"`
	OwnerID     domain.FlexInt `json:"idUser"`
}

func (d exerciseDTO) toDomain() domain.Exercise {
	return domain.Exercise{
		ID:          d.ID,
		OwnerID:     int(d.OwnerID),
		Name:        d.Name,
		Days:        DecodeDays(d.Days),
		Description: d.Description,
	}
}

func draftToDTO(draft domain.ExerciseDraft) exerciseDTO {
	return exerciseDTO{
		Name:        draft.Name,
		Days:        EncodeDays(draft.Days),
		Description: draft.Description,
		OwnerID:     domain.FlexInt(draft.OwnerID),
	}
}

// ListExercises returns every exercise the remote API knows about; the
// caller filters by owner.
func (c *Client) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	var dtos []exerciseDTO
	if _, err := c.call(ctx, "list exercises", http.MethodGet, []string{exercisesPath}, "", nil, &dtos); err != nil {
		return nil, err
	}
	exercises := make([]domain.Exercise, len(dtos))
	for i, dto := range dtos {
		exercises[i] = dto.toDomain()
	}
	return exercises, nil
}

func (c *Client) CreateExercise(ctx context.Context, draft domain.ExerciseDraft) error {
	_, err := c.call(ctx, "create exercise", http.MethodPost, []string{exercisesPath}, "", draftToDTO(draft), nil)
	return err
}

func (c *Client) UpdateExercise(ctx context.Context, id int, draft domain.ExerciseDraft) error {
	dto := draftToDTO(draft)
	dto.ID = id
	_, err := c.call(ctx, "update exercise", http.MethodPut, []string{exercisesPath, strconv.Itoa(id)}, "", dto, nil)
	return err
}

func (c *Client) DeleteExercise(ctx context.Context, id int) error {
	_, err := c.call(ctx, "delete exercise", http.MethodDelete, []string{exercisesPath, strconv.Itoa(id)}, "", nil, nil)
	return err
}
