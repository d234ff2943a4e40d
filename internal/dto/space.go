package dto

import "github.com/Rrens/space-reservation/internal/domain"

// SpaceDTO is the API shape of a space. Rooms is never nil.
type SpaceDTO struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Rooms []RoomDTO `json:"rooms"`
}

// SpaceRequest is the body of space create/update
type SpaceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// FromSpace maps a space aggregate to its DTO
func FromSpace(s *domain.Space) SpaceDTO {
	rooms := make([]RoomDTO, 0, len(s.Rooms))
	for i := range s.Rooms {
		rooms = append(rooms, FromRoom(&s.Rooms[i]))
	}
	return SpaceDTO{
		ID:    s.ID,
		Name:  s.Name,
		Rooms: rooms,
	}
}

// FromSpaces maps a list of spaces; the result is never nil
func FromSpaces(spaces []domain.Space) []SpaceDTO {
	out := make([]SpaceDTO, 0, len(spaces))
	for i := range spaces {
		out = append(out, FromSpace(&spaces[i]))
	}
	return out
}
