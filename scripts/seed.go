package main

import (
	"context"
	"log"
	"os"

	"github.com/detakmedis/backend/internal/adapters/database"
	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/infrastructure/clients/ollama"
	"github.com/detakmedis/backend/internal/infrastructure/clients/postgres"
	"github.com/detakmedis/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ollamaClient, err := ollama.NewClient(&cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to initialize Ollama client: %v", err)
	}

	specialtyRepo := database.NewSpecialtyAdapter(pgClient)
	diseaseRepo := database.NewDiseaseAdapter(pgClient)
	doctorRepo := database.NewDoctorAdapter(pgClient)

	specialtyService := services.NewSpecialtyService(specialtyRepo, ollamaClient)
	diseaseService := services.NewDiseaseService(diseaseRepo, specialtyRepo, ollamaClient)
	doctorService := services.NewDoctorService(doctorRepo, specialtyRepo, ollamaClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				diagnosis,
				medical_images,
				doctors,
				disease,
				poli
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	specialties := []entities.SpecialtyInput{
		{
			Name:        "Poli Jantung",
			Description: "Poli spesialis jantung dan pembuluh darah, menangani keluhan seperti nyeri dada, jantung berdebar, dan pembesaran jantung.",
		},
		{
			Name:        "Poli Paru",
			Description: "Poli spesialis paru, menangani keluhan pernapasan seperti sesak napas, batuk berkepanjangan, dan infeksi paru.",
		},
	}

	specialtyIDs := make(map[string]int)
	for _, input := range specialties {
		created, err := specialtyService.Create(ctx, input)
		if err != nil {
			log.Fatalf("Failed to seed specialty %q: %v", input.Name, err)
		}
		specialtyIDs[input.Name] = created.ID
		log.Printf("Seeded specialty %q (id=%d)", created.Name, created.ID)
	}

	diseases := []entities.DiseaseInput{
		{
			Name:        "Kardiomegali",
			Description: "Pembesaran jantung yang terlihat pada foto rontgen dada.",
			Symptoms:    "Sesak napas, mudah lelah, bengkak pada kaki, jantung berdebar.",
			Treatment:   "Pengobatan penyebab dasar, obat-obatan jantung, dan perubahan gaya hidup sesuai anjuran dokter.",
			PoliID:      specialtyIDs["Poli Jantung"],
		},
		{
			Name:        "Pneumonia",
			Description: "Infeksi yang menyebabkan peradangan pada kantong udara di salah satu atau kedua paru.",
			Symptoms:    "Batuk berdahak, demam, menggigil, sesak napas, nyeri dada saat bernapas.",
			Treatment:   "Antibiotik untuk pneumonia bakteri, istirahat, dan asupan cairan yang cukup.",
			PoliID:      specialtyIDs["Poli Paru"],
		},
		{
			Name:        "Efusi Pleura",
			Description: "Penumpukan cairan di rongga pleura antara paru dan dinding dada.",
			Symptoms:    "Sesak napas, nyeri dada, batuk kering.",
			Treatment:   "Pengeluaran cairan bila diperlukan dan penanganan penyakit yang mendasarinya.",
			PoliID:      specialtyIDs["Poli Paru"],
		},
	}

	for _, input := range diseases {
		created, err := diseaseService.Create(ctx, input)
		if err != nil {
			log.Fatalf("Failed to seed disease %q: %v", input.Name, err)
		}
		log.Printf("Seeded disease %q (id=%d)", created.Name, created.ID)
	}

	doctors := []entities.DoctorInput{
		{
			Name:        "dr. Andi Pratama, Sp.JP",
			Profile:     "Dokter spesialis jantung dan pembuluh darah dengan pengalaman lebih dari 10 tahun.",
			Speciality:  "Spesialis Jantung",
			ContactInfo: "andi.pratama@detakmedis.id",
			Location:    "Gedung A Lantai 2",
			PracticeSchedule: entities.PracticeSchedule{
				"Senin": "08:00-12:00",
				"Rabu":  "13:00-17:00",
			},
			PoliID: specialtyIDs["Poli Jantung"],
		},
		{
			Name:        "dr. Sari Wulandari, Sp.P",
			Profile:     "Dokter spesialis paru yang menangani penyakit infeksi dan non-infeksi saluran napas.",
			Speciality:  "Spesialis Paru",
			ContactInfo: "sari.wulandari@detakmedis.id",
			Location:    "Gedung B Lantai 1",
			PracticeSchedule: entities.PracticeSchedule{
				"Selasa": "08:00-12:00",
				"Kamis":  "08:00-12:00",
			},
			PoliID: specialtyIDs["Poli Paru"],
		},
	}

	for _, input := range doctors {
		created, err := doctorService.Create(ctx, input)
		if err != nil {
			log.Fatalf("Failed to seed doctor %q: %v", input.Name, err)
		}
		log.Printf("Seeded doctor %q (id=%d)", created.Name, created.ID)
	}

	log.Println("Seeding complete")
}
