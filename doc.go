// Package yuletree renders an animated Christmas tree greeting with
// [Ebitengine].
//
// The package splits into a pure layout core and a thin rendering layer.
//
// # Layout
//
// [SelectTheme] picks one of four fixed palettes by variant index, wrapping
// modulo the palette count. [GenerateOrnaments] spirals the theme's
// ornaments around the tree with jittered radius and scale, and
// [GenerateBackdropStars] scatters glowing spheres through the background
// volume. Every random draw goes through a [RandomSource], so a seeded
// source makes a layout reproducible:
//
//	rng := yuletree.NewRandomSource(42)
//	theme := yuletree.SelectTheme(0)
//	ornaments := yuletree.GenerateOrnaments(theme, rng)
//	stars := yuletree.GenerateBackdropStars(yuletree.DefaultBackdropStars, rng)
//
// # Scene description
//
// [BuildScene] turns a theme and its generated placements into a retained
// graph of [Node] values (groups, meshes, and lights) viewed through an
// orbiting [Camera]. [SceneDescription.Advance] drives the per-frame sway,
// spin, and twinkle. [Greeting] owns the [AppState]: each Advance moves to
// the next theme and raises the timed effect [Pulse].
//
// # Running
//
// [Game] implements [ebiten.Game] on top of all of the above, with a
// software perspective [Renderer], the [GoldenRain] flourish, and the text
// [Overlay]:
//
//	game, err := yuletree.NewGame(yuletree.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := yuletree.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package yuletree
