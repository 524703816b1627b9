package seed

import (
	"fmt"

	"gpupos/internal/domain"
	"gpupos/internal/store/inventory"
)

// GPUs returns the starter catalog used when no inventory snapshot exists.
func GPUs() []domain.GPU {
	return []domain.GPU{
		{
			ID:           "1",
			Name:         "GeForce RTX 4090",
			Manufacturer: "NVIDIA",
			Model:        "RTX 4090",
			Memory:       "24GB GDDR6X",
			PriceCents:   159900,
			Stock:        15,
			Image:        "/GeForce RTX 4090.png",
		},
		{
			ID:           "2",
			Name:         "GeForce RTX 4080",
			Manufacturer: "NVIDIA",
			Model:        "RTX 4080",
			Memory:       "16GB GDDR6X",
			PriceCents:   119900,
			Stock:        22,
			Image:        "/GeForce RTX 4080.png",
		},
		{
			ID:           "3",
			Name:         "Radeon RX 7900 XTX",
			Manufacturer: "AMD",
			Model:        "RX 7900 XTX",
			Memory:       "24GB GDDR6",
			PriceCents:   99900,
			Stock:        18,
			Image:        "/Radeon RX 7900 XTX.png",
		},
		{
			ID:           "4",
			Name:         "GeForce RTX 4070 Ti",
			Manufacturer: "NVIDIA",
			Model:        "RTX 4070 Ti",
			Memory:       "12GB GDDR6X",
			PriceCents:   79900,
			Stock:        30,
			Image:        "/GeForce RTX 4070 Ti.png",
		},
		{
			ID:           "5",
			Name:         "Radeon RX 7800 XT",
			Manufacturer: "AMD",
			Model:        "RX 7800 XT",
			Memory:       "16GB GDDR6",
			PriceCents:   64900,
			Stock:        25,
			Image:        "/Radeon RX 7800 XT.jpg",
		},
		{
			ID:           "6",
			Name:         "GeForce RTX 4060 Ti",
			Manufacturer: "NVIDIA",
			Model:        "RTX 4060 Ti",
			Memory:       "16GB GDDR6",
			PriceCents:   49900,
			Stock:        40,
			Image:        "/GeForce RTX 4060 Ti.png",
		},
	}
}

// Apply overwrites the inventory with the starter catalog.
func Apply(store *inventory.Store) error {
	if err := store.SetAll(GPUs()); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}
	return nil
}
