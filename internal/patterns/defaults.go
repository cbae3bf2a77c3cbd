package patterns

import (
	"strings"

	"github.com/temirov/project-print/internal/utils"
)

const listSeparator = ","

// DefaultIgnorePatterns covers build output, dependency directories, media and
// document formats, lockfiles and editor or CI metadata.
var DefaultIgnorePatterns = []string{
	"node_modules",
	"*.log",
	"dist",
	"build",
	"coverage",
	"documentation",
	".prettierrc",
	".gitignore",
	".serverless",
	".idea",
	".git/",
	".DS_Store",
	".husky",
	"package-lock.json",
	".vscode",
	".jpg",
	".jpeg",
	".png",
	".gif",
	".svg",
	".ico",
	".webp",
	".tif",
	".tiff",
	".bmp",
	".heif",
	".heic",
	".jfif",
	".ttf",
	".riv",
	".otf",
	".woff",
	".woff2",
	".eot",
	".sfnt",
	".fnt",
	".pfa",
	".pfb",
	".pfm",
	".afm",
	".jp2",
	".jpe",
	".jif",
	".pdf",
	".doc",
	".docx",
	".xls",
	".xlsx",
	".ppt",
	".pptx",
	"*.env",
	"*.bak",
	"*.tmp",
	"*.swp",
	".eslintcache",
	".yarn",
	".yarnrc",
	".yarn.lock",
	".editorconfig",
	".npmrc",
	".babelrc",
	".nyc_output",
	".cache",
	"project-print.txt",
	".eslintrc",
	".eslintrc.js",
	".eslintrc.json",
	".eslintrc.yml",
	".eslintrc.yaml",
	".npmignore",
	".babelrc.js",
	".babelrc.json",
	".babelrc.yml",
	".babelrc.yaml",
}

// BuildIgnoreSet assembles the ignore list of a run: the defaults when
// enabled, the output file name, then the user patterns. The first occurrence
// of a duplicate wins.
func BuildIgnoreSet(userPatterns []string, includeDefaults bool, outputFileName string) []string {
	var combined []string
	if includeDefaults {
		combined = append(combined, DefaultIgnorePatterns...)
	}
	if trimmedOutput := strings.TrimSpace(outputFileName); trimmedOutput != "" {
		combined = append(combined, trimmedOutput)
	}
	combined = append(combined, SplitLists(userPatterns)...)
	return utils.DeduplicatePatterns(combined)
}

// SplitList splits a comma-separated pattern list, trimming whitespace and
// dropping empty tokens.
func SplitList(rawList string) []string {
	var result []string
	for _, token := range strings.Split(rawList, listSeparator) {
		trimmedToken := strings.TrimSpace(token)
		if trimmedToken == "" {
			continue
		}
		result = append(result, trimmedToken)
	}
	return result
}

// SplitLists applies SplitList to every value and concatenates the results.
func SplitLists(rawLists []string) []string {
	var result []string
	for _, rawList := range rawLists {
		result = append(result, SplitList(rawList)...)
	}
	return result
}
