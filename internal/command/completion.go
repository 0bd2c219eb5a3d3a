// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/builddiff/internal/meta"
)

const bashCompletionScript = `# bash completion for builddiff
_builddiff()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "compare completion --help --version" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        compare)
            local opts="--output -o --filter -f --sort -s --color -c --local -l --ago --requested-by --changed --diff_filter"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            return 0
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Snapshots are files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _builddiff builddiff
`

const zshCompletionScript = `#compdef builddiff

_builddiff() {
  local -a cmds
  cmds=(
    'compare:report builds that are new in the latest snapshot'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'builddiff commands' cmds
    return
  fi

  case $words[2] in
    compare)
      _arguments -C \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters' \
        '(-s --sort)'{-s,--sort}'[sort fields]:fields' \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-l --local)'{-l,--local}'[local queue times]' \
        '--ago[show queue age]' \
        '--requested-by[show who requested each build]' \
        '--changed[report existing builds whose record changed]' \
        '--diff_filter[keys to drop from the changed report]' \
        '1:previous snapshot:_files' \
        '2:latest snapshot:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _builddiff builddiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	shell := cmd.Args().First()
	if shell == "" {
		// Fall back to the login shell.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: builddiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "builddiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
