package phi

import (
	"fmt"
	"strings"
)

// Human-readable rendering. A thin convenience only: nothing downstream
// may depend on these strings. The readable flag switches between the
// compact one-line forms and the multi-line forms used in interactive
// sessions.

var readable = false

// SetReadable toggles multi-line rendering for String methods.
func SetReadable(on bool) {
	readable = on
}

// Readable reports the current display-mode preference.
func Readable() bool {
	return readable
}

func indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

func (m *Mip) String() string {
	if !readable {
		return fmt.Sprintf("Mip(phi=%g, %s, mechanism=(%s), purview=(%s))",
			m.phi, m.direction, fmtIndices(m.mechanism), fmtIndices(m.purview))
	}
	partition := ""
	if m.partition != nil {
		partition = "\n" + indentLines(m.partition.String())
	}
	return fmt.Sprintf("Mip\n  phi: %g\n  direction: %s\n  mechanism: (%s)\n  purview: (%s)\n  partition:%s",
		m.phi, m.direction, fmtIndices(m.mechanism), fmtIndices(m.purview), partition)
}

func (m *Mice) String() string {
	if !readable {
		return fmt.Sprintf("Mice(phi=%g, %s, mechanism=(%s), purview=(%s))",
			m.mip.phi, m.mip.direction, fmtIndices(m.mip.mechanism), fmtIndices(m.mip.purview))
	}
	return "Mice\n" + indentLines(m.mip.String())
}

func (c *Concept) String() string {
	if !readable {
		return fmt.Sprintf("Concept(phi=%g, mechanism=(%s))", c.phi, fmtIndices(c.mechanism))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Concept\n-------\nphi: %g\nmechanism: (%s)\n", c.phi, fmtIndices(c.mechanism))
	if c.cause != nil {
		fmt.Fprintf(&b, "cause:\n%s\n", indentLines(c.cause.String()))
	}
	if c.effect != nil {
		fmt.Fprintf(&b, "effect:\n%s\n", indentLines(c.effect.String()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c Constellation) String() string {
	if len(c) == 0 {
		return "Constellation()"
	}
	rendered := make([]string, len(c))
	for i, concept := range c {
		rendered[i] = concept.String()
	}
	if !readable {
		return fmt.Sprintf("Constellation(%s)", strings.Join(rendered, ", "))
	}
	return "Constellation\n*************\n" + strings.Join(rendered, "\n\n")
}

func (b *BigMip) String() string {
	if !readable {
		return fmt.Sprintf("BigMip(phi=%g, subsystem=(%s))",
			b.phi, fmtIndices(b.subsystem.NodeIndices()))
	}
	return fmt.Sprintf("BigMip\n======\nphi: %g\nsubsystem: (%s)\ncut: %v\nunpartitioned: %s\npartitioned: %s",
		b.phi, fmtIndices(b.subsystem.NodeIndices()), b.Cut(),
		b.unpartitionedConstellation, b.partitionedConstellation)
}
