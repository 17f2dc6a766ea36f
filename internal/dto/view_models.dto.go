package dto

import "github.com/DojoGymServices/gym-manager/internal/domain/gym"

// View models montados pelos handlers; a renderização HTML fica a
// cargo do front, estes são os dados que a página recebe.

type MemberProfileDTO struct {
	Member     []gym.Row `json:"member"`
	Goals      []gym.Row `json:"goals"`
	Exercises  []gym.Row `json:"exercises"`
	Sessions   []gym.Row `json:"sessions"`
	Complaints []gym.Row `json:"complaints"`
	Payments   []gym.Row `json:"payments"`
	Loyalty    []gym.Row `json:"loyalty"`
	Health     []gym.Row `json:"health"`
}

type TrainerDetailDTO struct {
	Trainer  []gym.Row `json:"trainer"`
	Sessions []gym.Row `json:"sessions"`
}

type RoomDetailDTO struct {
	Room      []gym.Row `json:"room"`
	Equipment []gym.Row `json:"equipment"`
	Bookings  []gym.Row `json:"bookings"`
}

type ClassDetailDTO struct {
	Class   []gym.Row `json:"class"`
	Booking []gym.Row `json:"booking"`
	Room    []gym.Row `json:"room"`
	Members []gym.Row `json:"members"`
}
