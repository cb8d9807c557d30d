package cli

import (
	"fmt"
	"strings"

	"github.com/RMahshie/hornlab/pkg/models"
)

func kv(sb *strings.Builder, key, value string) {
	sb.WriteString(KeyStyle.Render(fmt.Sprintf("%-20s", key)))
	sb.WriteString(" ")
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func section(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(SectionStyle.Render(title))
	sb.WriteString("\n")
}

// RenderSynthesis formats the metadata of a synthesized profile
func RenderSynthesis(synth *models.SynthesizedProfile) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%s horn", synth.Params.Mode)))
	sb.WriteString("\n")

	kv(&sb, "Throat / mouth", fmt.Sprintf("%.1f / %.1f mm", synth.Params.ThroatDiameterMM, synth.Params.MouthDiameterMM))
	kv(&sb, "Length", fmt.Sprintf("%.1f mm", synth.Params.LengthMM))
	kv(&sb, "Samples", fmt.Sprintf("%d", len(synth.Profile)))
	kv(&sb, "Fractal dimension", fmt.Sprintf("%.3f", synth.Metadata.ReportedFractalDimension))
	kv(&sb, "Curve points", fmt.Sprintf("%d", synth.Metadata.PointCount))
	kv(&sb, "Path length", fmt.Sprintf("%.1f mm", synth.Metadata.PathLengthMM))
	kv(&sb, "Expansion ratio", fmt.Sprintf("%.2f", synth.Metadata.ExpansionRatio))
	return sb.String()
}

// RenderSimulation formats a simulation with its fractal metrics and score
func RenderSimulation(name string, sim *models.Simulation, fractal models.FractalMetrics, score models.AcousticScore) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(name))
	sb.WriteString("\n")

	kv(&sb, "Cutoff", fmt.Sprintf("%.1f Hz", sim.Impedance.CutoffHz))
	kv(&sb, "Avg reflection", fmt.Sprintf("%.3f", sim.AverageReflection))
	kv(&sb, "Mean |Z|", fmt.Sprintf("%.0f Pa·s/m", sim.MeanImpedance))
	kv(&sb, "Phase range", fmt.Sprintf("%.1f° to %.1f°", sim.PhaseMinDeg, sim.PhaseMaxDeg))

	section(&sb, "Frequency response")
	kv(&sb, "Passband", fmt.Sprintf("%.0f - %.0f Hz", sim.Response.Passband.LowHz, sim.Response.Passband.HighHz))
	kv(&sb, "Sensitivity", fmt.Sprintf("%.1f dB", sim.Response.SensitivityDB))
	kv(&sb, "Flatness", fmt.Sprintf("%.2f dB", sim.Response.FlatnessDB))

	if len(sim.Directivity) > 0 {
		section(&sb, "Directivity")
		for _, d := range sim.Directivity {
			kv(&sb, fmt.Sprintf("%.0f Hz", d.FrequencyHz),
				fmt.Sprintf("DI %.1f dB, -6 dB %.0f°", d.DirectivityIndexDB, d.Coverage6dBDeg))
		}
	}

	section(&sb, "Fractal analysis")
	kv(&sb, "Dimension", fmt.Sprintf("%.3f", fractal.Dimension))
	kv(&sb, "Surface area", fmt.Sprintf("%.0f mm²", fractal.SurfaceAreaMM2))
	kv(&sb, "Volume", fmt.Sprintf("%.0f mm³", fractal.VolumeMM3))
	if fractal.LowConfidence {
		sb.WriteString(WarnStyle.Render("  dimension is a fallback estimate"))
		sb.WriteString("\n")
	}

	section(&sb, "Score")
	kv(&sb, "Smoothness", fmt.Sprintf("%.3f", score.ImpedanceSmoothness))
	kv(&sb, "Flatness", fmt.Sprintf("%.3f", score.FrequencyFlatness))
	kv(&sb, "Polar uniformity", fmt.Sprintf("%.3f", score.PolarUniformity))
	kv(&sb, "Distortion", fmt.Sprintf("%.3f", score.DistortionScore))
	kv(&sb, "Overall", fmt.Sprintf("%.3f (%s)", score.Overall, score.Recommendation))
	return sb.String()
}

// RenderRanking formats a comparison in ranking order, followed by the
// candidates that could not be evaluated.
func RenderRanking(result models.RankedResult) string {
	rows := make(map[string]models.ComparisonRow, len(result.Rows))
	for _, r := range result.Rows {
		rows[r.ID] = r
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Comparison"))
	sb.WriteString("\n")

	for i, id := range result.Ranking {
		r := rows[id]
		kv(&sb, fmt.Sprintf("%d. %s", i+1, id),
			fmt.Sprintf("score %.4f  smoothness %.3f  reflection %.3f", r.Score, r.Smoothness, r.AverageReflection))
	}
	for _, r := range result.Rows {
		if r.Error != "" {
			sb.WriteString(WarnStyle.Render(fmt.Sprintf("  %s: %s", r.ID, r.Error)))
			sb.WriteString("\n")
		}
	}

	if result.Recommended != "" {
		sb.WriteString("\n")
		kv(&sb, "Recommended", result.Recommended)
	}
	return sb.String()
}
