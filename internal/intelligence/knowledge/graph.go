// Package knowledge maintains an in-memory directed weighted graph of medical
// concepts and typed relationships, supporting bounded-depth traversal,
// concept similarity scoring, cluster discovery, and pathway discovery.
package knowledge

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/common"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

const (
	// MinRelationshipStrength gates traversal: weaker edges are skipped.
	MinRelationshipStrength = 0.5

	// MaxPathwayLength bounds greedy pathway discovery.
	MaxPathwayLength = 6

	// minPathwayLength discards trivially short pathways.
	minPathwayLength = 3

	// clusterStrength gates cluster membership edges.
	clusterStrength = 0.7

	// minClusterSize discards clusters below this member count.
	minClusterSize = 3

	// defaultSimilarityTTL expires cached similarity scores.
	defaultSimilarityTTL = 30 * time.Minute
)

// Graph is the medical knowledge graph. All methods are safe for concurrent
// use; mutation holds a single writer lock.
type Graph interface {
	// AddConcept upserts a concept. A zero ID assigns the next counter-based
	// ID; the assigned concept is returned.
	AddConcept(concept MedicalConcept) (MedicalConcept, error)

	// AddRelationship upserts an edge. The ID derives from
	// (source, target, type), so re-adding the same edge overwrites it.
	AddRelationship(rel MedicalRelationship) (MedicalRelationship, error)

	// Query resolves conceptName (exact name/alias match first, then
	// substring) and walks the graph depth-first up to opts.MaxDepth. An
	// unresolvable name yields an empty result with zero confidence.
	Query(conceptName string, opts QueryOptions) QueryResult

	// Concepts lists every stored concept in insertion order.
	Concepts() []MedicalConcept

	// Similarity scores two concepts by name. Symmetric; cached.
	Similarity(nameA, nameB string) (SimilarityScore, error)

	// Clusters discovers groups of tightly-connected concepts, optionally
	// restricted to one domain. No cluster has fewer than 3 members.
	Clusters(domain MedicalDomain) []ConceptCluster

	// Stats aggregates counts and averages over the whole store.
	Stats() GraphStats
}

type graph struct {
	mu sync.RWMutex

	concepts      map[string]MedicalConcept
	conceptOrder  []string // insertion order, for deterministic iteration
	relationships map[string]MedicalRelationship
	relOrder      []string

	// nameIndex maps lowercase names and aliases to concept IDs.
	nameIndex map[string]string

	// incident maps a concept ID to the IDs of every edge touching it,
	// indexed from both endpoints for O(1) neighbour lookup.
	incident map[string][]string

	conceptSeq int
	clusterSeq int
	noSeed     bool

	similarityCache *gocache.Cache
	logger          logging.Logger
}

// Option customises graph construction.
type Option func(*graph)

// WithSimilarityTTL overrides the similarity cache TTL.
func WithSimilarityTTL(ttl time.Duration) Option {
	return func(g *graph) {
		g.similarityCache = gocache.New(ttl, ttl)
	}
}

// WithoutSeed skips the built-in seed concepts.
func WithoutSeed() Option {
	return func(g *graph) { g.noSeed = true }
}

// NewGraph builds a graph pre-loaded with the built-in seed concepts.
func NewGraph(log logging.Logger, opts ...Option) Graph {
	if log == nil {
		log = logging.NewNopLogger()
	}
	g := &graph{
		concepts:        map[string]MedicalConcept{},
		relationships:   map[string]MedicalRelationship{},
		nameIndex:       map[string]string{},
		incident:        map[string][]string{},
		similarityCache: gocache.New(defaultSimilarityTTL, defaultSimilarityTTL),
		logger:          log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.noSeed {
		for _, concept := range seedConcepts() {
			if _, err := g.AddConcept(concept); err != nil {
				// Seed data is static; a failure here is a programming error.
				panic(err)
			}
		}
	}
	return g
}

// ============================================================================
// Mutation
// ============================================================================

func (g *graph) AddConcept(concept MedicalConcept) (MedicalConcept, error) {
	if strings.TrimSpace(concept.Name) == "" {
		return MedicalConcept{}, errors.New(errors.ErrCodeConceptInvalid, "concept name is required")
	}
	concept.Confidence = common.Clamp01(concept.Confidence)

	g.mu.Lock()
	defer g.mu.Unlock()

	if concept.ID == "" {
		g.conceptSeq++
		concept.ID = fmt.Sprintf("concept-%06d", g.conceptSeq)
	}
	if _, exists := g.concepts[concept.ID]; !exists {
		g.conceptOrder = append(g.conceptOrder, concept.ID)
	}
	g.concepts[concept.ID] = concept

	g.nameIndex[strings.ToLower(concept.Name)] = concept.ID
	for _, alias := range concept.Aliases {
		g.nameIndex[strings.ToLower(alias)] = concept.ID
	}
	return concept, nil
}

func (g *graph) AddRelationship(rel MedicalRelationship) (MedicalRelationship, error) {
	if rel.SourceConceptID == "" || rel.TargetConceptID == "" || rel.RelationshipType == "" {
		return MedicalRelationship{}, errors.New(errors.ErrCodeRelationshipInvalid,
			"relationship requires source, target, and type")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.concepts[rel.SourceConceptID]; !ok {
		return MedicalRelationship{}, errors.NotFound(
			fmt.Sprintf("source concept %q not found", rel.SourceConceptID))
	}
	if _, ok := g.concepts[rel.TargetConceptID]; !ok {
		return MedicalRelationship{}, errors.NotFound(
			fmt.Sprintf("target concept %q not found", rel.TargetConceptID))
	}

	rel.Strength = common.Clamp01(rel.Strength)
	rel.Confidence = common.Clamp01(rel.Confidence)
	// Deterministic ID: re-adding (source, target, type) overwrites.
	rel.ID = fmt.Sprintf("%s|%s|%s", rel.SourceConceptID, rel.TargetConceptID, rel.RelationshipType)

	if _, exists := g.relationships[rel.ID]; !exists {
		g.relOrder = append(g.relOrder, rel.ID)
		g.incident[rel.SourceConceptID] = append(g.incident[rel.SourceConceptID], rel.ID)
		g.incident[rel.TargetConceptID] = append(g.incident[rel.TargetConceptID], rel.ID)
	}
	g.relationships[rel.ID] = rel

	// Edge changes invalidate cached similarity scores.
	g.similarityCache.Flush()
	return rel, nil
}

func (g *graph) Concepts() []MedicalConcept {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]MedicalConcept, 0, len(g.conceptOrder))
	for _, id := range g.conceptOrder {
		out = append(out, g.concepts[id])
	}
	return out
}

// ============================================================================
// Query (DFS traversal)
// ============================================================================

func (g *graph) Query(conceptName string, opts QueryOptions) QueryResult {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 1
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	rootID, ok := g.resolveLocked(conceptName)
	if !ok {
		return QueryResult{
			Concepts:      []MedicalConcept{},
			Relationships: []MedicalRelationship{},
			Confidence:    0,
			Reasoning:     fmt.Sprintf("no concept matching %q in the graph", conceptName),
		}
	}

	typeFilter := map[RelationshipType]bool{}
	for _, t := range opts.RelationshipTypes {
		typeFilter[t] = true
	}
	domainFilter := map[MedicalDomain]bool{}
	for _, d := range opts.Domains {
		domainFilter[d] = true
	}

	visited := map[string]bool{}
	seenRels := map[string]bool{}
	var concepts []MedicalConcept
	var relationships []MedicalRelationship

	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		if visited[id] {
			return
		}
		visited[id] = true
		concepts = append(concepts, g.concepts[id])

		if depth >= opts.MaxDepth {
			return
		}
		for _, relID := range g.incident[id] {
			rel := g.relationships[relID]
			if rel.Strength < MinRelationshipStrength {
				continue
			}
			if len(typeFilter) > 0 && !typeFilter[rel.RelationshipType] {
				continue
			}
			neighbourID := rel.TargetConceptID
			if neighbourID == id {
				neighbourID = rel.SourceConceptID
			}
			neighbour := g.concepts[neighbourID]
			if len(domainFilter) > 0 && !domainFilter[neighbour.Domain] {
				continue
			}
			if !seenRels[rel.ID] {
				seenRels[rel.ID] = true
				relationships = append(relationships, rel)
			}
			walk(neighbourID, depth+1)
		}
	}
	walk(rootID, 0)

	result := QueryResult{
		Concepts:      concepts,
		Relationships: relationships,
		Confidence:    g.concepts[rootID].Confidence,
		Reasoning: fmt.Sprintf("resolved %q to %s; traversed %d concepts and %d relationships at depth %d",
			conceptName, rootID, len(concepts), len(relationships), opts.MaxDepth),
	}
	if opts.IncludePathways {
		result.Pathways = g.discoverPathwaysLocked(concepts)
	}
	return result
}

// resolveLocked maps a concept name to an ID: exact case-insensitive
// name/alias match first, then substring match in sorted index order for
// determinism. Caller holds at least a read lock.
func (g *graph) resolveLocked(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	if id, ok := g.nameIndex[lower]; ok {
		return id, true
	}

	keys := make([]string, 0, len(g.nameIndex))
	for k := range g.nameIndex {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, lower) {
			return g.nameIndex[k], true
		}
	}
	return "", false
}

// discoverPathwaysLocked greedily follows precedes/follows edges from every
// diagnosis or procedure concept among those already collected, one hop at a
// time, stopping on a repeat or when no qualifying edge remains.
func (g *graph) discoverPathwaysLocked(collected []MedicalConcept) []Pathway {
	var pathways []Pathway
	for _, seed := range collected {
		if seed.Type != ConceptDiagnosis && seed.Type != ConceptProcedure &&
			seed.Type != ConceptCondition {
			continue
		}

		chain := []string{seed.ID}
		inChain := map[string]bool{seed.ID: true}
		current := seed.ID
		for len(chain) < MaxPathwayLength {
			next, ok := g.nextSequentialLocked(current, inChain)
			if !ok {
				break
			}
			chain = append(chain, next)
			inChain[next] = true
			current = next
		}
		if len(chain) < minPathwayLength {
			continue
		}

		names := make([]string, len(chain))
		for i, id := range chain {
			names[i] = g.concepts[id].Name
		}
		pathways = append(pathways, Pathway{ConceptIDs: chain, Names: names})
	}
	return pathways
}

// nextSequentialLocked picks the strongest outgoing precedes/follows edge
// from current whose far end is not yet in the chain.
func (g *graph) nextSequentialLocked(current string, inChain map[string]bool) (string, bool) {
	var best string
	var bestStrength float64
	for _, relID := range g.incident[current] {
		rel := g.relationships[relID]
		if rel.RelationshipType != RelPrecedes && rel.RelationshipType != RelFollows {
			continue
		}
		if rel.SourceConceptID != current {
			continue
		}
		if rel.Strength < MinRelationshipStrength {
			continue
		}
		if inChain[rel.TargetConceptID] {
			continue
		}
		if rel.Strength > bestStrength {
			best, bestStrength = rel.TargetConceptID, rel.Strength
		}
	}
	return best, best != ""
}

// ============================================================================
// Similarity
// ============================================================================

func (g *graph) Similarity(nameA, nameB string) (SimilarityScore, error) {
	g.mu.RLock()
	idA, okA := g.resolveLocked(nameA)
	idB, okB := g.resolveLocked(nameB)
	g.mu.RUnlock()

	if !okA {
		return SimilarityScore{}, errors.NotFound(fmt.Sprintf("concept %q not found", nameA))
	}
	if !okB {
		return SimilarityScore{}, errors.NotFound(fmt.Sprintf("concept %q not found", nameB))
	}

	// Forward cache hit, then reverse: a cached (A,B) score satisfies a
	// (B,A) query with the endpoint fields swapped.
	forwardKey := idA + "|" + idB
	reverseKey := idB + "|" + idA
	if v, ok := g.similarityCache.Get(forwardKey); ok {
		return v.(SimilarityScore), nil
	}
	if v, ok := g.similarityCache.Get(reverseKey); ok {
		cached := v.(SimilarityScore)
		return SimilarityScore{
			ConceptA:   idA,
			ConceptB:   idB,
			Similarity: cached.Similarity,
			Factors:    cached.Factors,
		}, nil
	}

	g.mu.RLock()
	score := g.computeSimilarityLocked(idA, idB)
	g.mu.RUnlock()

	g.similarityCache.SetDefault(forwardKey, score)
	return score, nil
}

func (g *graph) computeSimilarityLocked(idA, idB string) SimilarityScore {
	a := g.concepts[idA]
	b := g.concepts[idB]

	var similarity float64
	var factors []string

	if idA == idB {
		return SimilarityScore{ConceptA: idA, ConceptB: idB, Similarity: 1.0,
			Factors: []string{"identical concept"}}
	}

	if a.Domain == b.Domain {
		similarity += 0.2
		factors = append(factors, "same domain")
	}
	if a.Type == b.Type {
		similarity += 0.15
		factors = append(factors, "same type")
	}

	if shared := sharedProperties(a.Properties, b.Properties); shared > 0 {
		larger := len(a.Properties)
		if len(b.Properties) > larger {
			larger = len(b.Properties)
		}
		similarity += 0.1 * float64(shared) / float64(larger)
		factors = append(factors, fmt.Sprintf("%d shared properties", shared))
	}

	if shared, total := g.sharedNeighboursLocked(idA, idB); shared > 0 {
		similarity += 0.2 * float64(shared) / float64(total)
		factors = append(factors, fmt.Sprintf("%d shared relationships", shared))
	}

	if aliasOverlap(a, b) {
		similarity += 0.1
		factors = append(factors, "alias overlap")
	}

	return SimilarityScore{
		ConceptA:   idA,
		ConceptB:   idB,
		Similarity: common.Clamp01(similarity),
		Factors:    factors,
	}
}

func sharedProperties(a, b []ConceptProperty) int {
	set := make(map[ConceptProperty]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	shared := 0
	for _, p := range b {
		if set[p] {
			shared++
		}
	}
	return shared
}

// sharedNeighboursLocked counts third concepts that both A and B relate to
// via the same relationship type, normalized by the larger incident count.
func (g *graph) sharedNeighboursLocked(idA, idB string) (shared, total int) {
	type link struct {
		neighbour string
		relType   RelationshipType
	}
	linksOf := func(id string) map[link]bool {
		links := map[link]bool{}
		for _, relID := range g.incident[id] {
			rel := g.relationships[relID]
			neighbour := rel.TargetConceptID
			if neighbour == id {
				neighbour = rel.SourceConceptID
			}
			links[link{neighbour: neighbour, relType: rel.RelationshipType}] = true
		}
		return links
	}

	linksA := linksOf(idA)
	linksB := linksOf(idB)
	for l := range linksA {
		if linksB[l] {
			shared++
		}
	}
	total = len(linksA)
	if len(linksB) > total {
		total = len(linksB)
	}
	if total == 0 {
		total = 1
	}
	return shared, total
}

func aliasOverlap(a, b MedicalConcept) bool {
	namesOf := func(c MedicalConcept) []string {
		names := []string{strings.ToLower(c.Name)}
		for _, alias := range c.Aliases {
			names = append(names, strings.ToLower(alias))
		}
		return names
	}
	for _, an := range namesOf(a) {
		for _, bn := range namesOf(b) {
			if strings.Contains(an, bn) || strings.Contains(bn, an) {
				return true
			}
		}
	}
	return false
}

// ============================================================================
// Clusters
// ============================================================================

func (g *graph) Clusters(domain MedicalDomain) []ConceptCluster {
	g.mu.Lock()
	defer g.mu.Unlock()

	visited := map[string]bool{}
	var clusters []ConceptCluster

	for _, seedID := range g.conceptOrder {
		if visited[seedID] {
			continue
		}
		if domain != "" && g.concepts[seedID].Domain != domain {
			continue
		}

		members := g.bfsClusterLocked(seedID, domain, visited)
		if len(members) < minClusterSize {
			continue
		}

		g.clusterSeq++
		clusters = append(clusters, ConceptCluster{
			ID:               fmt.Sprintf("cluster-%06d", g.clusterSeq),
			ConceptIDs:       members,
			CentralConceptID: g.centralConceptLocked(members),
			Cohesion:         g.cohesionLocked(members),
		})
	}
	return clusters
}

// bfsClusterLocked walks breadth-first from seed following only strong edges,
// marking every reached concept visited.
func (g *graph) bfsClusterLocked(seed string, domain MedicalDomain, visited map[string]bool) []string {
	var members []string
	queue := []string{seed}
	visited[seed] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		members = append(members, id)

		for _, relID := range g.incident[id] {
			rel := g.relationships[relID]
			if rel.Strength < clusterStrength {
				continue
			}
			neighbour := rel.TargetConceptID
			if neighbour == id {
				neighbour = rel.SourceConceptID
			}
			if visited[neighbour] {
				continue
			}
			if domain != "" && g.concepts[neighbour].Domain != domain {
				continue
			}
			visited[neighbour] = true
			queue = append(queue, neighbour)
		}
	}
	return members
}

// centralConceptLocked returns the member with the most incident
// relationships, ties broken by member order.
func (g *graph) centralConceptLocked(members []string) string {
	central := members[0]
	best := -1
	for _, id := range members {
		if count := len(g.incident[id]); count > best {
			central, best = id, count
		}
	}
	return central
}

// cohesionLocked is the fraction of possible member pairs that are directly
// connected.
func (g *graph) cohesionLocked(members []string) float64 {
	n := len(members)
	if n < 2 {
		return 0
	}
	inCluster := make(map[string]bool, n)
	for _, id := range members {
		inCluster[id] = true
	}

	connected := 0
	for _, relID := range g.relOrder {
		rel := g.relationships[relID]
		if inCluster[rel.SourceConceptID] && inCluster[rel.TargetConceptID] {
			connected++
		}
	}
	possible := n * (n - 1) / 2
	return common.Clamp01(float64(connected) / float64(possible))
}

// ============================================================================
// Stats
// ============================================================================

func (g *graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		ConceptCount:        len(g.concepts),
		RelationshipCount:   len(g.relationships),
		ConceptsByDomain:    map[MedicalDomain]int{},
		ConceptsByType:      map[ConceptType]int{},
		RelationshipsByType: map[RelationshipType]int{},
	}

	var confidenceSum float64
	for _, id := range g.conceptOrder {
		c := g.concepts[id]
		stats.ConceptsByDomain[c.Domain]++
		stats.ConceptsByType[c.Type]++
		confidenceSum += c.Confidence
	}
	if len(g.concepts) > 0 {
		stats.AverageConfidence = confidenceSum / float64(len(g.concepts))
	}

	var strengthSum float64
	for _, id := range g.relOrder {
		rel := g.relationships[id]
		stats.RelationshipsByType[rel.RelationshipType]++
		strengthSum += rel.Strength
	}
	if len(g.relationships) > 0 {
		stats.AverageStrength = strengthSum / float64(len(g.relationships))
	}
	return stats
}

//Personal.AI order the ending
