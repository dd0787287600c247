package nitf

// SegmentsFlow walks the segments of a decoded file through callbacks, one
// segment kind at a time. Calls can be chained:
//
//	flow.FileHeader(onHeader).ForEachImageSegment(onImage).End()
type SegmentsFlow struct {
	header   *Header
	images   []*ImageSegment
	graphics []*GraphicSegment
	symbols  []*SymbolSegment
	labels   []*LabelSegment
	texts    []*TextSegment
}

// NewSegmentsFlow creates a flow over the segments of a decoded file
func NewSegmentsFlow(file *File) *SegmentsFlow {
	flow := &SegmentsFlow{}
	if file == nil {
		return flow
	}
	flow.header = file.Header
	flow.images = file.Images
	flow.graphics = file.Graphics
	flow.symbols = file.Symbols
	flow.labels = file.Labels
	flow.texts = file.Texts
	return flow
}

// FileHeader passes the file header to fn, if the file has one
func (f *SegmentsFlow) FileHeader(fn func(*Header)) *SegmentsFlow {
	if f.header != nil {
		fn(f.header)
	}
	return f
}

// ForEachImageSegment passes every image segment to fn in file order
func (f *SegmentsFlow) ForEachImageSegment(fn func(*ImageSegment)) *SegmentsFlow {
	for _, segment := range f.images {
		if segment != nil {
			fn(segment)
		}
	}
	return f
}

// ForEachGraphicSegment passes every graphic segment to fn in file order
func (f *SegmentsFlow) ForEachGraphicSegment(fn func(*GraphicSegment)) *SegmentsFlow {
	for _, segment := range f.graphics {
		if segment != nil {
			fn(segment)
		}
	}
	return f
}

// ForEachSymbolSegment passes every symbol segment to fn in file order
func (f *SegmentsFlow) ForEachSymbolSegment(fn func(*SymbolSegment)) *SegmentsFlow {
	for _, segment := range f.symbols {
		if segment != nil {
			fn(segment)
		}
	}
	return f
}

// ForEachLabelSegment passes every label segment to fn in file order
func (f *SegmentsFlow) ForEachLabelSegment(fn func(*LabelSegment)) *SegmentsFlow {
	for _, segment := range f.labels {
		if segment != nil {
			fn(segment)
		}
	}
	return f
}

// ForEachTextSegment passes every text segment to fn in file order
func (f *SegmentsFlow) ForEachTextSegment(fn func(*TextSegment)) *SegmentsFlow {
	for _, segment := range f.texts {
		if segment != nil {
			fn(segment)
		}
	}
	return f
}

// End terminates a chain of calls
func (f *SegmentsFlow) End() {}
