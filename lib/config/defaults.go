package config

func Default() *Config {
	return &Config{
		Inputs: Inputs{
			States:       "us_states.topojson",
			StatesObject: "us_states",
			NameProperty: "name",
			Nation:       "us.json",
			NationObject: "nation",
			Interest:     "interest_over_time.csv",
			Concerts:     "concerts.csv",
			Series:       "chart_data.csv",
		},
		Layout: Layout{
			Width:       1920,
			Height:      918,
			MapMargin:   Margins{Left: 30},
			ChartMargin: Margins{Top: 30, Right: 50, Bottom: 20, Left: 60},
		},
		Projection: Projection{
			Scale: 1000,
		},
		Map: Map{
			Thresholds:    []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			NoDataColor:   "white",
			StrokeColor:   "black",
			TooltipColor:  "#f0f0f0",
			LabelMidpoint: 50,
			DarkText:      "black",
			LightText:     "white",
			HiddenLabels:  []string{"District of Columbia"},
			OffsetLabels: []OffsetLabel{
				{Region: "Rhode Island", LabelDx: 35, LineDx: 25},
				{Region: "Delaware", LabelDx: 35, LineDx: 25},
			},
			MarkerSize:  25,
			LegendTitle: "Interest Value Legend",
			LegendWidth: 300,
		},
		Chart: Chart{
			AggregateKey:         "kpop",
			AggregateStrokeWidth: 5,
			StrokeWidth:          2,
			AnnotationRadius:     5,
			HiddenOpacity:        0.3,
			FallbackColor:        "#d9d9d9",
			Annotations: []Annotation{
				{
					Month: "12-Jul",
					Text:  "“GANGNAM STYLE” or “강남스타일” by PSY was released on July 15, 2012 on YouTube. As of March 1, 2024, the video has 5,073,695,257 views on YouTube. This song is still the most viewed video/song by a K-pop artist on YouTube today.",
					Color: "red",
				},
				{
					Month: "18-Sep",
					Text:  "BTS spoke at the UN for the 1st time on September 24, 2018.",
					Color: "red",
				},
				{
					Month: "19-May",
					Text:  "On May 1, 2019, BTS attended the Billboard Music Awards for the 3rd time and won the Top Social Artist and Top Duo/Group awards.",
					Color: "red",
				},
			},
		},
		Slider: Slider{
			Title: "Time Slider: From Jan 2012 to Feb 2024",
		},
		Categories: []Category{
			{Name: "BTS", Color: "#cab2d6", Glyph: "./symbols/BTS.png"},
			{Name: "BLACKPINK", Color: "#fb9a99", Glyph: "./symbols/BLACKPINK.png"},
			{Name: "PSY", Color: "#02818a", Glyph: "./symbols/PSY.png"},
			{Name: "EXO", Color: "#ffff99", Glyph: "./symbols/EXO.png"},
			{Name: "DAY6", Color: "#a6cee3", Glyph: "./symbols/DAY6.png"},
			{Name: "Girls' Generation", Color: "#d53e4f", Glyph: "./symbols/GirlsGen.png"},
			{Name: "BIGBANG", Color: "#fdbf6f", Glyph: "./symbols/BIGBANG.png"},
			{Name: "MAMAMOO", Color: "#1f78b4", Glyph: "./symbols/MAMAMOO.png"},
			{Name: "MOMOLAND", Color: "#b15928", Glyph: "./symbols/MOMOLAND.png"},
			{Name: "GOT7", Color: "#b2df8a", Glyph: "./symbols/GOT7.png"},
			{Name: "Stray Kids", Color: "#e31a1c", Glyph: "./symbols/SKZ.png"},
			{Name: "TOMORROW X TOGETHER", Color: "#33a02c", Glyph: "./symbols/TXT.png"},
			{Name: "ITZY", Color: "#c51b7d", Glyph: "./symbols/ITZY.png"},
			{Name: "ENHYPEN", Color: "#ff7f00", Glyph: "./symbols/ENHYPEN.png"},
			{Name: "(G)I-DLE", Color: "#7e00bf", Glyph: "./symbols/GIDLE.png"},
			{Name: "The Beatles", Color: "#d9d9d9"},
			{Name: "kpop", Color: "#006d2c"},
		},
	}
}
