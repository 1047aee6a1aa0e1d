package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewOrgRouter),
	fx.Provide(NewProjectRouter),
	fx.Provide(NewAssetRouter),
	fx.Provide(NewAssetVersionRouter),
)
