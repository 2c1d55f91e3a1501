package matching

import (
	"time"

	"github.com/google/uuid"
)

// SkillKind distinguishes what a user offers from what they are after.
type SkillKind string

const (
	SkillKindTeach SkillKind = "teach"
	SkillKindLearn SkillKind = "learn"
)

// SkillRecord is a single advertised skill with its embedding vector.
// TeachingHours is only meaningful on teach records; zero means the owner
// never estimated it.
type SkillRecord struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Skill         string    `json:"skill"`
	Kind          SkillKind `json:"kind"`
	Embedding     []float32 `json:"embedding,omitempty"`
	TeachingHours int       `json:"teachingHours,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileSkill pairs a skill name with its vector inside a derived profile.
type ProfileSkill struct {
	Skill         string
	Embedding     []float32
	TeachingHours int
}

// Profile is the derived compatibility view of one user's skills. Records
// whose embeddings failed to parse upstream carry a nil vector and are
// excluded here, so scoring never sees them.
type Profile struct {
	TeachSkills []ProfileSkill
	LearnSkills []ProfileSkill
}

// BuildProfile splits a user's skill records into teach and learn sides,
// silently dropping records without a usable embedding.
func BuildProfile(records []SkillRecord) Profile {
	var p Profile
	for _, rec := range records {
		if len(rec.Embedding) == 0 {
			continue
		}
		skill := ProfileSkill{Skill: rec.Skill, Embedding: rec.Embedding, TeachingHours: rec.TeachingHours}
		switch rec.Kind {
		case SkillKindTeach:
			p.TeachSkills = append(p.TeachSkills, skill)
		case SkillKindLearn:
			p.LearnSkills = append(p.LearnSkills, skill)
		}
	}
	return p
}

// TeachVectors returns the raw teach-side vectors.
func (p Profile) TeachVectors() [][]float32 {
	return vectorsOf(p.TeachSkills)
}

// LearnVectors returns the raw learn-side vectors.
func (p Profile) LearnVectors() [][]float32 {
	return vectorsOf(p.LearnSkills)
}

func vectorsOf(skills []ProfileSkill) [][]float32 {
	if len(skills) == 0 {
		return nil
	}
	out := make([][]float32, len(skills))
	for i, s := range skills {
		out[i] = s.Embedding
	}
	return out
}

// MatchResult is the outcome of comparing two users' profiles.
type MatchResult struct {
	LearnScore   float64 `json:"learnScore"`
	TeachScore   float64 `json:"teachScore"`
	MatchWorthy  bool    `json:"matchWorthy"`
	Skill        string  `json:"skill,omitempty"`
	SessionCount int     `json:"sessionCount,omitempty"`
}

// BestScore returns the stronger of the two directional scores.
func (r MatchResult) BestScore() float64 {
	if r.TeachScore > r.LearnScore {
		return r.TeachScore
	}
	return r.LearnScore
}
