package services

import (
	"strings"
	"sync"

	"pentouz/dto"
	"pentouz/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput lowercases and strips accents for matching.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// NewMatcher builds a closestmatch index over a keyword list.
func NewMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity scores two strings between 0 and 1 using levenshtein distance.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/maxLen
}

// uniqueCities collects the distinct guest cities for the matcher index.
func uniqueCities(guests []models.Guest) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, g := range guests {
		city := NormalizeInput(g.City)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	return cities
}

func scoreGuest(query string, guest models.Guest, cmCity *closestmatch.ClosestMatch) int {
	normalized := NormalizeInput(query)
	score := 0

	name := NormalizeInput(guest.Name)
	if strings.Contains(name, normalized) {
		score += 20
	} else if Similarity(normalized, name) > 0.6 {
		score += 12
	}

	if guest.Email != "" && strings.Contains(NormalizeInput(guest.Email), normalized) {
		score += 10
	}
	if guest.Phone != "" && strings.Contains(guest.Phone, strings.TrimSpace(query)) {
		score += 15
	}

	if cmCity != nil && guest.City != "" && cmCity.Closest(normalized) == NormalizeInput(guest.City) {
		score += 5
	}

	return score
}

// SearchGuests ranks guests against a free-text query, scored concurrently.
func SearchGuests(query string, guests []models.Guest) []dto.ScoredGuest {
	cmCity := NewMatcher(uniqueCities(guests))

	scoreCh := make(chan dto.ScoredGuest, len(guests))
	var wg sync.WaitGroup

	for _, guest := range guests {
		wg.Add(1)
		go func(g models.Guest) {
			defer wg.Done()
			score := scoreGuest(query, g, cmCity)
			if score <= 0 {
				return
			}
			scoreCh <- dto.ScoredGuest{
				Guest: dto.GuestResponse{
					ID:                 g.ID,
					Name:               g.Name,
					Email:              g.Email,
					Phone:              g.Phone,
					City:               g.City,
					Status:             g.Status,
					StayCount:          g.StayCount,
					Avatar:             g.Avatar,
					CorporateCompanyID: g.CorporateCompanyID,
					CorporateStatus:    g.CorporateStatus,
				},
				Score: score,
			}
		}(guest)
	}

	wg.Wait()
	close(scoreCh)

	var scored []dto.ScoredGuest
	for s := range scoreCh {
		scored = append(scored, s)
	}

	// Highest score first, stable enough for the console list.
	for i := 0; i < len(scored); i++ {
		for j := i + 1; j < len(scored); j++ {
			if scored[j].Score > scored[i].Score {
				scored[i], scored[j] = scored[j], scored[i]
			}
		}
	}

	return scored
}
