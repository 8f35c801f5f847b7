package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/antivirus/assets"
)

// SFX plays the synthesized effects. A nil *SFX is silent.
type SFX struct {
	ctx *audio.Context
	hit []byte
}

func NewSFX() *SFX {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(assets.SampleRate)
	}
	return &SFX{ctx: ctx, hit: assets.HitTone.PCM(ctx.SampleRate())}
}

func (s *SFX) PlayHit() {
	if s == nil || len(s.hit) == 0 {
		return
	}
	player := s.ctx.NewPlayerFromBytes(s.hit)
	player.Play()
}
