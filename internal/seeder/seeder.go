package seeder

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"atrium/config"
	"atrium/infras/otel"
	adminService "atrium/internal/domains/admin/service"
	"atrium/internal/domains/room/model"
	"atrium/internal/domains/room/model/dto"
	roomService "atrium/internal/domains/room/service"
	"atrium/shared/constant"
	"atrium/shared/failure"

	"github.com/rs/zerolog/log"
)

// Seeder loads the default room catalog and makes sure the administrative
// account exists. Running it repeatedly is safe: rooms are matched by name
// and refreshed in place, the admin account is never overwritten.
type Seeder struct {
	rooms  roomService.Room
	admins adminService.AdminAccount
	cfg    *config.Config
	otel   otel.Otel
}

func New(rooms roomService.Room, admins adminService.AdminAccount, cfg *config.Config, otel otel.Otel) *Seeder {
	return &Seeder{
		rooms:  rooms,
		admins: admins,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSeederScopeName, constant.OtelSeederScopeName+".Run")
	defer scope.End()

	if err := s.seedRooms(ctx); err != nil {
		return err
	}

	log.Info().Msg("Seeded room catalog successfully.")

	return s.ensureAdminAccount(ctx)
}

func (s *Seeder) seedRooms(ctx context.Context) error {
	for _, room := range defaultRooms() {
		existing, err := s.rooms.GetByName(ctx, room.Name)

		if err != nil {
			if failure.GetCode(err) != http.StatusNotFound {
				return fmt.Errorf("failed to look up room %q: %w", room.Name, err)
			}

			if _, err := s.rooms.Create(ctx, room); err != nil {
				return fmt.Errorf("failed to seed room %q: %w", room.Name, err)
			}

			log.Info().Str("room", room.Name).Msg("Room created")

			continue
		}

		update := dto.UpdateRoomRequest{
			Description:   room.Description,
			PricePerNight: &room.PricePerNight,
			RoomType:      room.RoomType,
			ImageURL:      room.ImageURL,
			Amenities:     model.Amenities(room.Amenities),
			Occupancy:     &room.Occupancy,
			BedType:       room.BedType,
		}

		if err := s.rooms.Update(ctx, update, existing.ID); err != nil {
			return fmt.Errorf("failed to refresh room %q: %w", room.Name, err)
		}

		log.Info().Str("room", room.Name).Msg("Room refreshed")
	}

	return nil
}

func (s *Seeder) ensureAdminAccount(ctx context.Context) error {
	admin := s.cfg.Admin

	if admin.Username == constant.Empty || admin.Password == constant.Empty {
		return errors.New("admin credentials are not configured")
	}

	created, err := s.admins.Ensure(ctx, admin.Username, admin.Email, admin.Password)
	if err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}

	if created {
		log.Info().Str("username", admin.Username).Msg("Created admin account with the provided credentials.")
	}

	return nil
}

func defaultRooms() []dto.CreateRoomRequest {
	return []dto.CreateRoomRequest{
		{
			Name:          "Standard Room",
			Description:   "Comfortable and elegantly designed standard rooms perfect for business and leisure travelers.",
			PricePerNight: 120.00,
			RoomType:      "standard",
			ImageURL:      "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=1200",
			Amenities:     []string{"King Size Bed", "City View", "Complimentary WiFi", "Mini Bar", "Room Service"},
			Occupancy:     2,
			BedType:       "King Size Bed",
		},
		{
			Name:          "Executive Suite",
			Description:   "Spacious suites with separate living areas and premium amenities for the discerning traveler.",
			PricePerNight: 250.00,
			RoomType:      "executive",
			ImageURL:      "https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg?auto=compress&cs=tinysrgb&w=1200",
			Amenities:     []string{"Separate Living Area", "Mountain View", "Complimentary Breakfast", "Executive Lounge Access"},
			Occupancy:     4,
			BedType:       "King Size Bed",
		},
		{
			Name:          "Presidential Suite",
			Description:   "The ultimate in luxury accommodation with panoramic views and personalized service.",
			PricePerNight: 500.00,
			RoomType:      "presidential",
			ImageURL:      "https://images.pexels.com/photos/2373201/pexels-photo-2373201.jpeg?auto=compress&cs=tinysrgb&w=1200",
			Amenities:     []string{"Luxury Furnishings", "Panoramic Views", "Butler Service", "Private Balcony", "Premium Bar"},
			Occupancy:     6,
			BedType:       "King Size Bed",
		},
	}
}
