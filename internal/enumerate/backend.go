package enumerate

import "github.com/Cyclone1070/finch/internal/config"

// Options derives the fixed argument set for one enumeration run.
type Options struct {
	// Hidden includes hidden files.
	Hidden bool

	// NoIgnore disables gitignore handling in the tool.
	NoIgnore bool

	// FileTypes restricts results to these extensions (no leading dot).
	FileTypes []string

	// ExtraArgs are appended verbatim after the derived arguments.
	ExtraArgs []string
}

// OptionsFrom maps the validated search config to enumeration options for
// its configured backend.
func OptionsFrom(cfg config.SearchConfig) Options {
	return Options{
		Hidden:    cfg.SearchHidden,
		NoIgnore:  !cfg.RespectGitignore,
		FileTypes: cfg.FileTypes,
		ExtraArgs: cfg.ExtraArgs[cfg.Backend],
	}
}

// ForName returns the backend for a config name.
func ForName(name string) (Backend, error) {
	switch name {
	case "fd":
		return fdBackend{}, nil
	case "rg":
		return rgBackend{}, nil
	default:
		return nil, &UnknownBackendError{Name: name}
	}
}

// fdBackend enumerates with fd, using the query as fd's filename pattern.
type fdBackend struct{}

func (fdBackend) Name() string { return "fd" }

// fd exits 0 even when nothing matches; every non-zero exit is a failure.
func (fdBackend) NoMatchExit(code int) bool { return false }

func (fdBackend) Args(query string, opts Options) []string {
	args := []string{"--type", "f", "--color", "never"}
	if opts.Hidden {
		args = append(args, "--hidden")
	}
	if opts.NoIgnore {
		args = append(args, "--no-ignore")
	}
	for _, ext := range opts.FileTypes {
		args = append(args, "--extension", ext)
	}
	args = append(args, opts.ExtraArgs...)
	if query != "" {
		args = append(args, "--", query)
	}
	return args
}

// rgBackend enumerates with ripgrep in files mode. rg has no filename
// pattern argument, so the query becomes a case-insensitive basename glob;
// with file types configured the query folds into one glob per extension.
type rgBackend struct{}

func (rgBackend) Name() string { return "rg" }

// rg exits 1 when no files matched, which is a valid empty result.
func (rgBackend) NoMatchExit(code int) bool { return code == 1 }

func (rgBackend) Args(query string, opts Options) []string {
	args := []string{"--files", "--color", "never"}
	if opts.Hidden {
		args = append(args, "--hidden")
	}
	if opts.NoIgnore {
		args = append(args, "--no-ignore")
	}

	pattern := ""
	if query != "" {
		pattern = "*" + query + "*"
	}
	if len(opts.FileTypes) > 0 {
		stem := pattern
		if stem == "" {
			stem = "*"
		}
		for _, ext := range opts.FileTypes {
			args = append(args, "--iglob", stem+"."+ext)
		}
	} else if pattern != "" {
		args = append(args, "--iglob", pattern)
	}

	args = append(args, opts.ExtraArgs...)
	return args
}
