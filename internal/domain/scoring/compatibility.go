package scoring

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ece-platform/appforge/internal/domain"
)

// Platform-compatible package ranges. Unknown packages are assumed
// compatible; this list only constrains what it names.
var compatibleRanges = map[string]string{
	"react":         "17.x || 18.x",
	"next":          "12.x || 13.x || 14.x",
	"typescript":    "4.x || 5.x",
	"tailwindcss":   "3.x",
	"framer-motion": "10.x || 11.x",
}

// Framework detection order. A project declaring multiple frameworks
// reports only the first match.
var frameworkProbes = []struct {
	name string
	keys []string
}{
	{"React", []string{"react"}},
	{"Vue", []string{"vue"}},
	{"Angular", []string{"@angular/core", "angular"}},
	{"Next.js", []string{"next"}},
	{"Express", []string{"express"}},
}

// ScoreCompatibility detects the project framework and checks every declared
// dependency against the platform's compatible version ranges.
func ScoreCompatibility(snap *domain.Snapshot) domain.CompatibilityAnalysis {
	recommendations := []string{}
	score := 100

	deps := snap.Manifest.AllDependencies()

	framework := "unknown"
	version := "unknown"
	for _, probe := range frameworkProbes {
		for _, key := range probe.keys {
			if v, ok := deps[key]; ok {
				framework = probe.name
				version = v
				break
			}
		}
		if framework != "unknown" {
			break
		}
	}

	dependencies := make([]domain.DependencyInfo, 0, len(deps))
	incompatible := 0
	for name, v := range deps {
		compatible := versionCompatible(name, v)
		info := domain.DependencyInfo{Name: name, Version: v, Compatible: compatible}
		if !compatible {
			info.Issues = []string{fmt.Sprintf("Version %s may not be compatible with platform integration", v)}
			incompatible++
		}
		dependencies = append(dependencies, info)
	}
	score -= incompatible * 5

	switch framework {
	case "React":
		if majorVersion(version) < 17 {
			score -= 20
			recommendations = append(recommendations, "Upgrade React to version 17+ for better platform compatibility")
		}
	case "unknown":
		score -= 30
		recommendations = append(recommendations, "Consider migrating to a supported framework (React, Next.js, Vue)")
	}

	if _, hasTS := deps["typescript"]; !hasTS {
		if _, hasTypes := deps["@types/node"]; !hasTypes {
			score -= 15
			recommendations = append(recommendations, "Add TypeScript for better type safety and platform integration")
		}
	}

	return domain.CompatibilityAnalysis{
		Score:           clampScore(score),
		Framework:       framework,
		Version:         version,
		Dependencies:    dependencies,
		Recommendations: recommendations,
	}
}

// versionCompatible checks a declared version against the compatible range
// for the package, if one is defined.
func versionCompatible(name, declared string) bool {
	rangeExpr, known := compatibleRanges[name]
	if !known {
		return true
	}

	constraint, err := semver.NewConstraint(rangeExpr)
	if err != nil {
		return true
	}

	v, err := semver.NewVersion(cleanVersion(declared))
	if err != nil {
		return false
	}
	return constraint.Check(v)
}

// majorVersion extracts the major component from a possibly range-prefixed
// version string ("^18.2.0" -> 18). Unparsable input yields 0.
func majorVersion(declared string) uint64 {
	v, err := semver.NewVersion(cleanVersion(declared))
	if err != nil {
		return 0
	}
	return v.Major()
}

// cleanVersion strips range operators and wildcard suffixes so the result
// parses as a plain version.
func cleanVersion(declared string) string {
	var b strings.Builder
	for _, r := range declared {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}
