package shaders

import (
	"strings"
	"testing"

	"github.com/Faultbox/orrery/internal/engine/shader"
)

func TestDefinitionsLoad(t *testing.T) {
	for _, def := range Definitions {
		vs, fs, err := shader.LoadSources(FS, def.Vertex, def.Fragment)
		if err != nil {
			t.Errorf("%s: %v", def.Name, err)
			continue
		}
		for _, src := range []string{vs, fs} {
			if !strings.HasPrefix(src, "#version 410 core") {
				t.Errorf("%s: source does not target GLSL 4.10 core", def.Name)
			}
		}
	}
}

func TestUniformsDeclared(t *testing.T) {
	want := map[string][]string{
		Planet: {"model", "view", "projection", "lightPos", "lightColor", "viewPos",
			"isLightSource", "hasClouds", "textureToSet", "cloudTexture"},
		Orbit:  {"model", "view", "projection", "colorToSet", "lightPos", "lightColor", "viewPos", "ignoreLights"},
		Skybox: {"view", "projection", "skybox"},
	}

	for _, def := range Definitions {
		vs, fs, err := shader.LoadSources(FS, def.Vertex, def.Fragment)
		if err != nil {
			t.Fatal(err)
		}
		src := vs + fs
		for _, u := range want[def.Name] {
			if !strings.Contains(src, " "+u+";") {
				t.Errorf("%s: uniform %s not declared", def.Name, u)
			}
		}
	}
}
