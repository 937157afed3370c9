// Package pipeline orchestrates one generation run per request:
// build prompt, invoke the generation service, validate the structured
// output, persist the project record. Each stage either advances or halts
// the run; no intermediate state is persisted, and a project is created
// only when validation has succeeded.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atelier-studio/atelier/internal/content"
	"github.com/atelier-studio/atelier/internal/generation"
	"github.com/atelier-studio/atelier/internal/projects"
	"github.com/atelier-studio/atelier/internal/prompts"
)

// Generator abstracts the generation client for testing.
type Generator interface {
	Generate(ctx context.Context, messages []generation.Message) (string, error)
}

// Result pairs the validated content with its persisted project record.
// The two are produced atomically: generation never succeeds without a
// record existing, and a persistence failure surfaces as an error, never
// as a partial result.
type Result struct {
	Content *content.Content  `json:"content"`
	Project *projects.Project `json:"project"`
}

// Runner executes the generation pipeline against a generator and a
// project store, both supplied at construction.
type Runner struct {
	generator Generator
	store     projects.System
	logger    *slog.Logger
	language  string
}

// NewRunner creates a pipeline Runner. language is the locale tag stamped
// onto every created project.
func NewRunner(gen Generator, store projects.System, logger *slog.Logger, language string) *Runner {
	return &Runner{
		generator: gen,
		store:     store,
		logger:    logger.With("system", "pipeline"),
		language:  language,
	}
}

// Handler returns the HTTP handler for the pipeline's endpoints.
func (r *Runner) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// GenerateSocial runs the pipeline for a social content brief.
func (r *Runner) GenerateSocial(ctx context.Context, brief prompts.SocialBrief) (*Result, error) {
	platforms := strings.Join(brief.Platforms, ", ")

	return r.run(ctx, prompts.BuildSocial(brief), brief, projects.CreateCommand{
		Type:               projects.TypeSocialContent,
		ClientName:         brief.ClientName,
		ClientBusinessName: brief.BusinessName,
		Niche:              brief.Niche,
		Platform:           &platforms,
		ToneOfVoice:        &brief.ToneOfVoice,
		Brief:              brief.Objectives,
	})
}

// GenerateScripts runs the pipeline for a video scripts brief.
func (r *Runner) GenerateScripts(ctx context.Context, brief prompts.ScriptsBrief) (*Result, error) {
	return r.run(ctx, prompts.BuildScripts(brief), brief, projects.CreateCommand{
		Type:        projects.TypeTikTokScripts,
		ClientName:  brief.ClientName,
		Niche:       brief.Niche,
		Platform:    &brief.ContentType,
		ToneOfVoice: &brief.HookStyle,
		Brief:       brief.TargetAudience,
	})
}

// GenerateBranding runs the pipeline for a branding kit brief.
func (r *Runner) GenerateBranding(ctx context.Context, brief prompts.BrandingBrief) (*Result, error) {
	clientName := "New Brand"
	if brief.BrandName != nil && *brief.BrandName != "" {
		clientName = *brief.BrandName
	}

	return r.run(ctx, prompts.BuildBranding(brief), brief, projects.CreateCommand{
		Type:        projects.TypeBrandingKit,
		ClientName:  clientName,
		Niche:       brief.Industry,
		ToneOfVoice: &brief.BrandPersonality,
		Brief:       brief.Keywords,
	})
}

// run executes the shared stage sequence. cmd arrives with the summary
// fields already extracted from the brief; run fills in language and the
// serialized inputs/output payloads.
func (r *Runner) run(
	ctx context.Context,
	prompt prompts.Prompt,
	brief any,
	cmd projects.CreateCommand,
) (*Result, error) {
	raw, err := r.generator.Generate(ctx, []generation.Message{
		{Role: generation.RoleSystem, Content: prompt.System},
		{Role: generation.RoleUser, Content: prompt.User},
	})
	if err != nil {
		r.logger.Warn("generation failed", "type", cmd.Type, "error", err)
		return nil, err
	}

	validated, err := content.Validate(raw, cmd.Type)
	if err != nil {
		r.logger.Warn("validation failed", "type", cmd.Type, "error", err)
		return nil, err
	}

	inputs, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("serialize brief: %w", err)
	}

	output, err := validated.MarshalPayload()
	if err != nil {
		return nil, fmt.Errorf("serialize content: %w", err)
	}

	cmd.Language = r.language
	cmd.InputsJSON = inputs
	cmd.OutputJSON = output

	project, err := r.store.Create(ctx, cmd)
	if err != nil {
		// The generated content is discarded with the failure; the
		// pipeline holds no durable staging area.
		r.logger.Error("persistence failed", "type", cmd.Type, "error", err)
		return nil, err
	}

	r.logger.Info("pipeline complete", "type", cmd.Type, "project", project.ID)
	return &Result{Content: validated, Project: project}, nil
}
