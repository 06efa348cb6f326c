// Package bitstream inspects the H.264 Annex B output of an encoder session.
package bitstream

import (
	"sort"

	"github.com/Eyevinn/mp4ff/avc"

	"github.com/user/framepump/pkg/ports"
)

// Unit describes one emitted chunk of bitstream.
type Unit struct {
	NALUs    int
	Keyframe bool
}

// Report is the accumulated view of everything inspected so far.
type Report struct {
	Units     int            `yaml:"access_units"`
	Keyframes int            `yaml:"keyframes"`
	NALUTypes map[string]int `yaml:"nalu_types,omitempty"`

	// Coded size from the first SPS seen, zero when none was.
	CodedWidth  int `yaml:"coded_width,omitempty"`
	CodedHeight int `yaml:"coded_height,omitempty"`
}

// Inspector splits emitted chunks into NAL units and counts them.
// It only reads the bytes it is given.
type Inspector struct {
	width  int
	height int
	logger ports.Logger

	units     int
	keyframes int
	counts    map[avc.NaluType]int

	spsSeen     bool
	codedWidth  int
	codedHeight int
}

// NewInspector creates an Inspector expecting frames of width x height.
func NewInspector(width, height int, logger ports.Logger) *Inspector {
	return &Inspector{
		width:  width,
		height: height,
		logger: logger.WithComponent("bitstream"),
		counts: make(map[avc.NaluType]int),
	}
}

// Inspect records one chunk. Chunks without a start code count as a unit
// with no NAL units, which is what a raw pass-through engine produces.
func (i *Inspector) Inspect(chunk []byte) Unit {
	i.units++

	var u Unit
	for _, nalu := range avc.ExtractNalusFromByteStream(chunk) {
		if len(nalu) == 0 {
			continue
		}
		u.NALUs++

		typ := avc.GetNaluType(nalu[0])
		i.counts[typ]++

		switch typ {
		case avc.NALU_IDR:
			u.Keyframe = true
		case avc.NALU_SPS:
			if !i.spsSeen {
				i.spsSeen = true
				i.checkSPS(nalu)
			}
		}
	}

	if u.Keyframe {
		i.keyframes++
	}
	return u
}

func (i *Inspector) checkSPS(nalu []byte) {
	sps, err := avc.ParseSPSNALUnit(nalu, false)
	if err != nil {
		i.logger.Warn("Could not parse SPS: %s", err)
		return
	}

	i.codedWidth = int(sps.Width)
	i.codedHeight = int(sps.Height)
	i.logger.Debug("SPS: profile %d, level %d, %dx%d", sps.Profile, sps.Level, i.codedWidth, i.codedHeight)

	if i.codedWidth != i.width || i.codedHeight != i.height {
		i.logger.Warn("Coded size %dx%d differs from configured %dx%d",
			i.codedWidth, i.codedHeight, i.width, i.height)
	}
}

// Report returns a snapshot of the counters.
func (i *Inspector) Report() Report {
	r := Report{
		Units:       i.units,
		Keyframes:   i.keyframes,
		CodedWidth:  i.codedWidth,
		CodedHeight: i.codedHeight,
	}
	if len(i.counts) > 0 {
		r.NALUTypes = make(map[string]int, len(i.counts))
		for typ, n := range i.counts {
			r.NALUTypes[typ.String()] = n
		}
	}
	return r
}

// TypeNames returns the NAL type names in r in a stable order.
func (r Report) TypeNames() []string {
	names := make([]string, 0, len(r.NALUTypes))
	for name := range r.NALUTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
