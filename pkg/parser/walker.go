package parser

import (
	"mvdan.cc/sh/v3/syntax"
)

// astWalker walks the AST and extracts commands, file writes, and pipelines.
type astWalker struct {
	commands   []Command
	fileWrites []FileWrite
	pipelines  []Pipeline
}

// visit is called for each node in the AST.
func (w *astWalker) visit(node syntax.Node) bool {
	switch n := node.(type) {
	case *syntax.CallExpr:
		w.extractCommand(n)
	case *syntax.Stmt:
		w.extractRedirect(n)
	case *syntax.BinaryCmd:
		if n.Op == syntax.Pipe {
			w.extractPipeline(n)
		}
	}

	return true
}

// extractCommand extracts a command from a CallExpr node.
func (w *astWalker) extractCommand(call *syntax.CallExpr) {
	if len(call.Args) == 0 {
		return
	}

	name := wordToString(call.Args[0])
	if name == "" {
		return
	}

	cmd := Command{
		Name: name,
		Args: wordsToStrings(call.Args[1:]),
		Location: Location{
			Line:   call.Pos().Line(),
			Column: call.Pos().Col(),
		},
	}

	w.commands = append(w.commands, cmd)
	w.extractFileWriteCommand(cmd)
}

// extractPipeline records the command names of a pipe chain. Only the
// outermost pipe of a chain is recorded: nested pipe nodes on the left
// side are flattened into it.
func (w *astWalker) extractPipeline(bin *syntax.BinaryCmd) {
	names := flattenPipe(bin)
	if len(names) < 2 {
		return
	}

	w.pipelines = append(w.pipelines, Pipeline{Commands: names})
}

// flattenPipe returns the command names of a pipe chain in order.
func flattenPipe(bin *syntax.BinaryCmd) []string {
	var names []string

	if left, ok := bin.X.Cmd.(*syntax.BinaryCmd); ok && left.Op == syntax.Pipe {
		names = append(names, flattenPipe(left)...)
	} else if name := stmtCommandName(bin.X); name != "" {
		names = append(names, name)
	}

	if name := stmtCommandName(bin.Y); name != "" {
		names = append(names, name)
	}

	return names
}

// stmtCommandName returns the command name of a statement, or "".
func stmtCommandName(stmt *syntax.Stmt) string {
	if stmt == nil {
		return ""
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Args) == 0 {
		return ""
	}

	return wordToString(call.Args[0])
}

// extractRedirect extracts file write operations from redirections.
func (w *astWalker) extractRedirect(stmt *syntax.Stmt) {
	if stmt.Redirs == nil {
		return
	}

	var (
		outputPath     string
		outputOp       WriteOp
		outputLoc      Location
		heredocContent string
		heredocLoc     Location
	)

	hasOutput := false
	hasHeredoc := false

	for _, redir := range stmt.Redirs {
		if redir.Op == syntax.RdrOut || redir.Op == syntax.AppOut {
			path := wordToString(redir.Word)
			if path == "" {
				continue
			}

			outputPath = path

			outputOp = WriteOpRedirect
			if redir.Op == syntax.AppOut {
				outputOp = WriteOpAppend
			}

			outputLoc = Location{
				Line:   redir.Pos().Line(),
				Column: redir.Pos().Col(),
			}
			hasOutput = true
		}

		if redir.Op == syntax.Hdoc || redir.Op == syntax.DashHdoc {
			if redir.Hdoc != nil {
				heredocContent = wordToString(redir.Hdoc)
			}

			heredocLoc = Location{
				Line:   redir.Pos().Line(),
				Column: redir.Pos().Col(),
			}
			hasHeredoc = true
		}
	}

	switch {
	case hasOutput && hasHeredoc:
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      outputPath,
			Operation: WriteOpHeredoc,
			Content:   heredocContent,
			Location:  heredocLoc,
		})
	case hasOutput:
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      outputPath,
			Operation: outputOp,
			Location:  outputLoc,
		})
	}
	// A heredoc without an output redirection feeds a command's stdin and
	// is not a file write.
}

// extractFileWriteCommand detects file write commands (tee, cp, mv).
func (w *astWalker) extractFileWriteCommand(cmd Command) {
	op, targets := getFileWriteOperation(cmd)
	if op == WriteOpNone {
		return
	}

	for _, target := range targets {
		w.fileWrites = append(w.fileWrites, FileWrite{
			Path:      target,
			Operation: op,
			Source:    cmd.Name,
			Location:  cmd.Location,
		})
	}
}

// getFileWriteOperation determines if a command writes to files.
func getFileWriteOperation(cmd Command) (WriteOp, []string) {
	switch cmd.Name {
	case "tee":
		return WriteOpTee, cmd.PositionalArgs()

	case "cp":
		if args := cmd.PositionalArgs(); len(args) >= 2 {
			return WriteOpCopy, []string{args[len(args)-1]}
		}

	case "mv":
		if args := cmd.PositionalArgs(); len(args) >= 2 {
			return WriteOpMove, []string{args[len(args)-1]}
		}
	}

	return WriteOpNone, nil
}
