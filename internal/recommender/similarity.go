package recommender

import (
	"log"
	"math"
	"sort"

	"pescatours-backend/internal/models"
)

// cosine similitud coseno restringida a la intersección de tours que ambos
// usuarios puntuaron: producto punto y las dos normas se calculan solo sobre
// los tours comunes. Intersección vacía o norma cero => 0.
func cosine(a, b map[string]float64) float64 {
	// iteramos el lado más chico
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, na, nb float64
	for id, ra := range a {
		rb, ok := b[id]
		if !ok {
			continue
		}
		dot += ra * rb
		na += ra * ra
		nb += rb * rb
	}

	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// computeAllPairSimilarities recorre todos los pares no ordenados de usuarios
// presentes en la matriz (O(U²), aceptable a esta escala), calcula la
// similitud una sola vez por par y la guarda en las listas de ambos. Después
// ordena cada lista descendente y la trunca a MaxNeighbors.
func (e *Engine) computeAllPairSimilarities(r *run) {
	users := make([]string, 0, len(r.userItem))
	for u := range r.userItem {
		users = append(users, u)
	}
	// orden estable para que el progreso y los empates sean reproducibles
	sort.Strings(users)

	neighbors := make(map[string][]models.UserSimilarity, len(users))

	total := len(users) * (len(users) - 1) / 2
	done := 0
	lastPct := -1

	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			ui, uj := users[i], users[j]

			sim := cosine(r.userItem[ui], r.userItem[uj])
			done++

			if total > 0 {
				pct := done * 100 / total
				if pct/10 != lastPct/10 {
					log.Printf("[recommender] similitudes %d%% (%d/%d pares)", pct, done, total)
					e.report("similarity", done, total)
					lastPct = pct
				}
			}

			if sim <= SimilarityThreshold {
				continue
			}

			// simétrica por construcción: un cálculo, dos entradas
			neighbors[ui] = append(neighbors[ui], models.UserSimilarity{UserID: uj, Similarity: sim})
			neighbors[uj] = append(neighbors[uj], models.UserSimilarity{UserID: ui, Similarity: sim})
		}
	}

	for u, list := range neighbors {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Similarity != list[j].Similarity {
				return list[i].Similarity > list[j].Similarity
			}
			return list[i].UserID < list[j].UserID
		})
		if len(list) > MaxNeighbors {
			list = list[:MaxNeighbors]
		}
		neighbors[u] = list
	}

	r.neighbors = neighbors
}
